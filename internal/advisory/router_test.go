package advisory

import (
	"strings"
	"testing"

	"github.com/aumai/kisanmitra/internal/models"
)

func TestRespond_RoutesEachCategory(t *testing.T) {
	r := NewRouter(nil)

	cases := []struct {
		name  string
		query string
		want  string // distinctive fragment of the category answer
	}{
		{"price", "what is the mandi rate for onion", "Agmarknet"},
		{"pest", "my crop has an insect infection", "Krishi Vigyan Kendra"},
		{"fertilizer", "how much urea and dap should I use", "soil test"},
		{"irrigation", "is drip irrigation worth it", "Sinchayee"},
		{"seed", "which hybrid variety should I sow", "certified seeds"},
		{"weather", "what is the monsoon forecast", "IMD"},
		{"loan", "how to get a kcc loan", "Kisan Credit Card"},
		{"insurance", "how do I enrol in fasal bima", "PMFBY"},
		{"msp", "when does msp procurement start", "23 kharif and rabi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := r.Respond(models.Query{Text: tc.query, Language: "en"})
			if !strings.Contains(resp.Answer, tc.want) {
				t.Errorf("answer %q does not contain %q", resp.Answer, tc.want)
			}
			if len(resp.Sources) == 0 {
				t.Error("sources empty for keyword match")
			}
		})
	}
}

func TestRespond_TieGoesToEarlierCategory(t *testing.T) {
	r := NewRouter(nil)
	// "price" (category 1) and "pest" (category 2) each score exactly 1;
	// the earlier category must win.
	resp := r.Respond(models.Query{Text: "price pest", Language: "en"})
	if !strings.Contains(resp.Answer, "Agmarknet") {
		t.Errorf("tie not won by price category: %q", resp.Answer)
	}
}

func TestRespond_HigherScoreBeatsEarlierCategory(t *testing.T) {
	r := NewRouter(nil)
	// One price keyword against two insurance keywords.
	resp := r.Respond(models.Query{Text: "market rules for fasal bima and pradhan mantri schemes", Language: "en"})
	if !strings.Contains(resp.Answer, "PMFBY") {
		t.Errorf("two insurance keywords should beat one price keyword: %q", resp.Answer)
	}
}

func TestRespond_InsuranceScenario(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "How do I apply for PMFBY crop insurance?", Language: "en"})
	if !strings.Contains(resp.Answer, "Pradhan Mantri Fasal Bima Yojana") {
		t.Errorf("insurance query routed elsewhere: %q", resp.Answer)
	}
}

func TestRespond_FallbackForUnmatchedQuery(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "xyz completely unrelated text", Language: "en"})
	if !strings.Contains(resp.Answer, "Kisan Call Centre") && resp.Answer != fallbackAnswer {
		t.Errorf("expected fallback answer, got %q", resp.Answer)
	}
	if len(resp.Sources) != len(fallbackSources) {
		t.Errorf("expected fallback sources, got %v", resp.Sources)
	}
}

func TestRespond_EmptyQueryGetsFallback(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "", Language: "en"})
	if resp.Answer == "" {
		t.Fatal("empty query produced empty answer")
	}
	if resp.Disclaimer != models.Disclaimer {
		t.Errorf("disclaimer = %q", resp.Disclaimer)
	}
	if resp.Sources == nil {
		t.Error("sources is nil")
	}
}

func TestRespond_LocationSuffixAppended(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "xyz completely unrelated text", Language: "en", Location: "Nagpur"})
	if !strings.Contains(resp.Answer, "Nagpur") {
		t.Errorf("location missing from answer: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Krishi Vigyan Kendra") {
		t.Errorf("KVK guidance missing from answer: %q", resp.Answer)
	}
}

func TestRespond_NoLocationNoSuffix(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "what is the mandi rate", Language: "en"})
	if strings.Contains(resp.Answer, "Block Agriculture Officer") {
		t.Errorf("location suffix appended without location: %q", resp.Answer)
	}
}

func TestRespond_LanguageEchoed(t *testing.T) {
	r := NewRouter(nil)
	resp := r.Respond(models.Query{Text: "mandi rate", Language: "hi"})
	if resp.Language != "hi" {
		t.Errorf("language = %q, want hi", resp.Language)
	}
}

func TestRespond_DisclaimerAlwaysSet(t *testing.T) {
	r := NewRouter(nil)
	for _, q := range []string{"", "mandi rate", "nonsense zzz", "pest insect disease"} {
		resp := r.Respond(models.Query{Text: q, Language: "en"})
		if resp.Disclaimer != models.Disclaimer {
			t.Errorf("Respond(%q).Disclaimer = %q", q, resp.Disclaimer)
		}
	}
}

func TestRespond_CustomEntryTable(t *testing.T) {
	custom := []Entry{
		{Keywords: []string{"soil"}, Answer: "custom soil answer", Sources: []string{"local lab"}},
	}
	r := NewRouter(custom)

	resp := r.Respond(models.Query{Text: "my soil looks tired", Language: "en"})
	if resp.Answer != "custom soil answer" {
		t.Errorf("custom table not used: %q", resp.Answer)
	}

	// Queries outside the custom table still fall back.
	resp = r.Respond(models.Query{Text: "mandi rate", Language: "en"})
	if resp.Answer != fallbackAnswer {
		t.Errorf("expected fallback with custom table, got %q", resp.Answer)
	}
}

func TestRespond_Idempotent(t *testing.T) {
	r := NewRouter(nil)
	q := models.Query{Text: "how to get a kcc loan", Language: "en", Location: "Pune"}
	first := r.Respond(q)
	second := r.Respond(q)
	if first.Answer != second.Answer || first.Language != second.Language {
		t.Error("repeated Respond diverged")
	}
}
