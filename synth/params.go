package synth

const (
	SampleRate = 44100

	DefaultMasterVolumeDB = -15.0
	DefaultPolyphony      = 8
	WaveformSize          = 1024
)

// EnvelopeParams describes an ADSR envelope. Times are in seconds, Sustain is a level in 0..1.
type EnvelopeParams struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// VoiceParams configures the FM voice used by every note.
type VoiceParams struct {
	Harmonicity        float64 // modulator/carrier frequency ratio
	ModulationIndex    float64 // peak phase deviation of the carrier, radians
	DetuneCents        float64
	Envelope           EnvelopeParams
	ModulationEnvelope EnvelopeParams
}

// EffectParams configures the serial chorus -> reverb -> tremolo chain.
type EffectParams struct {
	ChorusFrequency  float64 // Hz
	ChorusDelayMs    float64
	ChorusDepth      float64 // 0..1
	ReverbDecay      float64 // seconds to -60 dB
	ReverbMix        float64 // 0..1 wet
	TremoloFrequency float64 // Hz
	TremoloDepth     float64 // 0..1
}

// Params is the full engine configuration.
type Params struct {
	Voice          VoiceParams
	Effects        EffectParams
	MasterVolumeDB float64
	Polyphony      int // voices per note
}

// DefaultParams returns the string-like FM patch the toy ships with.
func DefaultParams() Params {
	return Params{
		Voice: VoiceParams{
			Harmonicity:     3,
			ModulationIndex: 10,
			Envelope: EnvelopeParams{
				Attack:  0.1,
				Decay:   0.2,
				Sustain: 0.8,
				Release: 1.5,
			},
			ModulationEnvelope: EnvelopeParams{
				Attack:  0.5,
				Decay:   0,
				Sustain: 1,
				Release: 0.5,
			},
		},
		Effects: EffectParams{
			ChorusFrequency:  4,
			ChorusDelayMs:    2.5,
			ChorusDepth:      0.5,
			ReverbDecay:      1.5,
			ReverbMix:        0.5,
			TremoloFrequency: 6,
			TremoloDepth:     0.8,
		},
		MasterVolumeDB: DefaultMasterVolumeDB,
		Polyphony:      DefaultPolyphony,
	}
}
