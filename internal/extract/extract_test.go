package extract

import "testing"

func TestScanSkills(t *testing.T) {
	got := ScanSkills("We need Python and SQL experience, Docker a plus.")
	want := map[string]bool{"python": true, "sql": true, "docker": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected skill %q in %v", s, got)
		}
	}
}

func TestScanSkillsSubstringMatch(t *testing.T) {
	// "java" is a substring of "javascript"; the scan is deliberately
	// substring based, so both tokens hit.
	got := ScanSkills("Strong JavaScript background required")
	found := map[string]bool{}
	for _, s := range got {
		found[s] = true
	}
	if !found["javascript"] || !found["java"] {
		t.Fatalf("expected javascript and java, got %v", got)
	}
}

func TestScanSkillsEmpty(t *testing.T) {
	if got := ScanSkills(""); got != nil {
		t.Fatalf("expected nil for empty description, got %v", got)
	}
	if got := ScanSkills("nothing relevant here"); len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
}

func TestScanRequirements(t *testing.T) {
	got := ScanRequirements("Bachelor degree and 3+ years experience, familiar with cloud")
	found := map[string]bool{}
	for _, s := range got {
		found[s] = true
	}
	for _, want := range []string{"degree", "bachelor", "experience", "years", "familiar with"} {
		if !found[want] {
			t.Fatalf("missing %q in %v", want, got)
		}
	}
}

func TestCounterTopN(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"python", "sql", "python", "aws", "sql", "python"})

	top := c.TopN(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "python" || top[0].Count != 3 {
		t.Fatalf("expected python=3 first, got %+v", top[0])
	}
	if top[1].Name != "sql" || top[1].Count != 2 {
		t.Fatalf("expected sql=2 second, got %+v", top[1])
	}
}

func TestCounterTopNTiesKeepFirstSeenOrder(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"docker", "react", "aws"})

	top := c.TopN(10)
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	for i, want := range []string{"docker", "react", "aws"} {
		if top[i].Name != want || top[i].Count != 1 {
			t.Fatalf("position %d: expected %s=1, got %+v", i, want, top[i])
		}
	}
}

func TestCounterNilSafe(t *testing.T) {
	var c *Counter
	c.Add("python")
	if c.Len() != 0 {
		t.Fatalf("expected len 0 on nil counter")
	}
	if got := c.TopN(5); len(got) != 0 {
		t.Fatalf("expected empty TopN on nil counter, got %v", got)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"sql":     "Sql",
		"PYTHON":  "Python",
		" react ": "React",
		"émigré":  "Émigré",
		"":        "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
