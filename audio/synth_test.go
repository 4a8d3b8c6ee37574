package audio

import (
	"math"
	"testing"
)

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		if a := math.Abs(s[0]); a > p {
			p = a
		}
	}
	return p
}

func TestSynthVoiceSoundsOnNoteOn(t *testing.T) {
	v := NewSynthVoice(SampleRate)
	buf := make([][2]float64, SampleRate/10)

	n, ok := v.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	if p := peak(buf); p != 0 {
		t.Fatalf("silent voice produced peak %v", p)
	}

	v.NoteOn(69)
	v.Stream(buf)
	if p := peak(buf); p < 0.1 {
		t.Fatalf("gated voice peak %v, want audible output", p)
	}
}

func TestSynthVoiceDecaysAfterNoteOff(t *testing.T) {
	v := NewSynthVoice(SampleRate)
	buf := make([][2]float64, SampleRate/10)

	v.NoteOn(60)
	v.Stream(buf)
	v.NoteOff()

	// One 100ms block is well past the release ramp.
	v.Stream(buf)
	v.Stream(buf)
	if p := peak(buf); p != 0 {
		t.Fatalf("released voice still sounding, peak %v", p)
	}
}

func TestSynthVoiceChannelsMatch(t *testing.T) {
	v := NewSynthVoice(SampleRate)
	v.NoteOn(64)
	buf := make([][2]float64, 512)
	v.Stream(buf)
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d: left %v != right %v", i, s[0], s[1])
		}
	}
}

func TestSynthVoiceEnvelopeStaysBounded(t *testing.T) {
	v := NewSynthVoice(SampleRate)
	v.NoteOn(71)
	buf := make([][2]float64, SampleRate)
	v.Stream(buf)
	if p := peak(buf); p > v.maxGain+1e-9 {
		t.Fatalf("peak %v exceeds max gain %v", p, v.maxGain)
	}
}

func TestSetProgramPicksWaveformFamily(t *testing.T) {
	cases := []struct {
		program uint8
		want    Waveform
	}{
		{0, Sine},    // piano
		{16, Square}, // organ
		{24, Triangle},
		{40, Saw},
		{73, Sine}, // flute
		{80, Square},
	}
	for _, tc := range cases {
		v := NewSynthVoice(SampleRate)
		v.SetProgram(tc.program)
		if v.wave != tc.want {
			t.Errorf("program %d: waveform %v, want %v", tc.program, v.wave, tc.want)
		}
	}
}

func TestMidiToFreq(t *testing.T) {
	cases := []struct {
		note uint8
		want float64
	}{
		{69, 440.00},
		{60, 261.63},
		{81, 880.00},
	}
	for _, tc := range cases {
		if got := midiToFreq(tc.note); math.Abs(got-tc.want) > 0.01 {
			t.Errorf("midiToFreq(%d) = %.2f, want %.2f", tc.note, got, tc.want)
		}
	}
}

func TestOscSampleRanges(t *testing.T) {
	for _, wave := range []Waveform{Sine, Square, Saw, Triangle} {
		for phase := 0.0; phase < 1.0; phase += 0.01 {
			s := oscSample(wave, phase)
			if s < -1.0001 || s > 1.0001 {
				t.Fatalf("wave %v at phase %.2f: sample %v out of range", wave, phase, s)
			}
		}
	}
}
