package lexiloc

import "testing"

func newTestSubstitutor(translations map[string]string) *Substitutor {
	patterns := make([]string, 0, len(translations))
	for phrase := range translations {
		patterns = append(patterns, phrase)
	}
	return NewSubstitutor(NewAutomaton(FilterPatterns(patterns)), translations)
}

func TestSubstitutorApply(t *testing.T) {
	tests := []struct {
		name         string
		translations map[string]string
		input        string
		want         string
	}{
		{
			name:         "longest phrase wins",
			translations: map[string]string{"Orokin": "奥罗金", "Orokin Vault": "奥罗金宝库"},
			input:        "Orokin Vault",
			want:         "奥罗金宝库",
		},
		{
			name:         "multiple occurrences",
			translations: map[string]string{"Orokin": "奥罗金"},
			input:        "Orokin and Orokin",
			want:         "奥罗金 and 奥罗金",
		},
		{
			name:         "boundary rejects word fragment",
			translations: map[string]string{"ON": "开"},
			input:        "DRAGON ON",
			want:         "DRAGON 开",
		},
		{
			name:         "missing translation copies source",
			translations: map[string]string{"Orokin": ""},
			input:        "Orokin Vault",
			want:         "Orokin Vault",
		},
		{
			name:         "no translations is identity",
			translations: map[string]string{},
			input:        "anything <at> all",
			want:         "anything <at> all",
		},
		{
			name:         "mixed script text",
			translations: map[string]string{"Void": "虚空"},
			input:        "进入Void区域",
			want:         "进入虚空区域",
		},
		{
			name:         "adjacent matches",
			translations: map[string]string{"奥罗金": "Orokin", "宝库": "Vault"},
			input:        "奥罗金宝库",
			want:         "OrokinVault",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSubstitutor(tt.translations)
			if got := s.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSubstitutorReplacedCount(t *testing.T) {
	s := newTestSubstitutor(map[string]string{"Orokin": "奥罗金"})

	s.Apply("Orokin, Orokin, Orokin")
	if got := s.Replaced(); got != 3 {
		t.Errorf("Replaced() = %d, want 3", got)
	}

	s.Apply("Orokin")
	if got := s.Replaced(); got != 4 {
		t.Errorf("Replaced() accumulates across calls: got %d, want 4", got)
	}
}

func TestSubstitutorIdempotent(t *testing.T) {
	// Running the substitutor on its own output must not change
	// already-translated text.
	s := newTestSubstitutor(map[string]string{
		"Orokin":       "奥罗金",
		"Orokin Vault": "奥罗金宝库",
		"Void":         "虚空",
	})

	once := s.Apply("The Orokin Vault sits in the Void")
	twice := s.Apply(once)

	if once != twice {
		t.Errorf("second pass changed output:\n once %q\ntwice %q", once, twice)
	}
}

func TestSubstitutorOutputLengthInvariant(t *testing.T) {
	// Without any accepted, translated match the output is byte-identical.
	s := newTestSubstitutor(map[string]string{"zzz": "yyy"})

	input := "no matches anywhere in this run 奥罗金 123"
	if got := s.Apply(input); got != input {
		t.Errorf("Apply changed text without matches:\n got %q\nwant %q", got, input)
	}
}
