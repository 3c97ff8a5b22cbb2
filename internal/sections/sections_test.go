package sections

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
		{
			name:   "trims and keeps blank lines",
			input:  "  Привет  \n\n\tмир\t",
			expect: []string{"Привет", "", "мир"},
		},
		{
			name:   "handles windows and old mac line endings",
			input:  "a\r\nb\rc",
			expect: []string{"a", "b", "c"},
		},
		{
			name:   "trailing newline does not add a line",
			input:  "a\nb\n",
			expect: []string{"a", "b"},
		},
		{
			name:   "whitespace-only lines become blank",
			input:  "a\n   \nb",
			expect: []string{"a", "", "b"},
		},
		{
			name:   "composes decomposed cyrillic",
			input:  "Кра\u0438\u0306",
			expect: []string{"Кра\u0439"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestDictionaryMatch(t *testing.T) {
	t.Parallel()

	dict := DefaultDictionary()

	tests := []struct {
		line      string
		ok        bool
		canonical string
		kind      Kind
	}{
		{line: "Опыт работы", ok: true, canonical: "Опыт работы", kind: KindWorkExperience},
		{line: "Опыт   работы", ok: true, canonical: "Опыт работы", kind: KindWorkExperience},
		{line: "ОПЫТ РАБОТЫ", ok: true, canonical: "Опыт работы", kind: KindWorkExperience},
		{line: "опыт работы:", ok: true, canonical: "Опыт работы", kind: KindWorkExperience},
		{line: "Обо мне", ok: true, canonical: "О себе", kind: KindAbout},
		{line: "Professional Profile", ok: true, canonical: "Профессиональный профиль", kind: KindAbout},
		{line: "Дополнительная информация", ok: true, canonical: "Дополнительная информация", kind: KindSkills},
		{line: "КОРОТКОЕ СОПРОВОДИТЕЛЬНОЕ ПИСЬМО", ok: true, canonical: "Короткое сопроводительное письмо", kind: KindCoverLetter},
		{line: "Образование", ok: true, canonical: "Образование", kind: KindEducation},
		{line: "Хобби", ok: false},
		{line: "", ok: false},
		{line: "Опыт работы в Яндексе", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		h, ok := dict.Match(tt.line)
		if ok != tt.ok {
			t.Fatalf("%q: expected match %v, got %v", tt.line, tt.ok, ok)
		}
		if !ok {
			continue
		}
		if h.Canonical != tt.canonical || h.Kind != tt.kind {
			t.Fatalf("%q: unexpected heading %+v", tt.line, h)
		}
	}
}

func TestDictionarySpellingsPriority(t *testing.T) {
	t.Parallel()

	dict := DefaultDictionary()
	got := dict.Spellings(KindAbout)
	expect := []string{"О себе", "Профессиональный профиль"}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %q, got %q", expect, got)
	}

	got = dict.Spellings(KindCoverLetter)
	expect = []string{"Сопроводительное письмо", "Короткое сопроводительное письмо"}
	if !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %q, got %q", expect, got)
	}
}

func TestDictionaryWithAliases(t *testing.T) {
	t.Parallel()

	base := DefaultDictionary()
	extended, err := base.WithAliases(map[string]string{"Карьера": "Опыт работы"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h, ok := extended.Match("КАРЬЕРА"); !ok || h.Kind != KindWorkExperience {
		t.Fatalf("expected alias to match work experience, got %+v %v", h, ok)
	}

	if base.IsHeading("Карьера") {
		t.Fatalf("base dictionary must not be modified")
	}

	if _, err := base.WithAliases(map[string]string{"Хобби": "Увлечения"}); err == nil {
		t.Fatalf("expected error for unknown canonical spelling")
	}
}

func TestMapOverwrite(t *testing.T) {
	t.Parallel()

	m := NewMap()
	about := Heading{Canonical: "О себе", Kind: KindAbout}
	profile := Heading{Canonical: "Профессиональный профиль", Kind: KindAbout}
	skills := Heading{Canonical: "Навыки", Kind: KindSkills}

	m.Put(about, []string{"first"})
	m.Put(skills, []string{"go"})
	m.Put(profile, []string{"second"})

	b, ok := m.Latest(KindAbout)
	if !ok || b.Canonical != "Профессиональный профиль" {
		t.Fatalf("expected latest about block to be the profile one, got %+v", b)
	}

	m.Put(about, []string{"third"})
	b, _ = m.Latest(KindAbout)
	if b.Canonical != "О себе" || !reflect.DeepEqual(b.Lines, []string{"third"}) {
		t.Fatalf("expected re-put spelling to win, got %+v", b)
	}

	if m.Len() != 3 {
		t.Fatalf("expected 3 blocks, got %d", m.Len())
	}

	order := make([]string, 0)
	for _, block := range m.Blocks() {
		order = append(order, block.Canonical)
	}
	expect := []string{"Навыки", "Профессиональный профиль", "О себе"}
	if !reflect.DeepEqual(order, expect) {
		t.Fatalf("expected order %q, got %q", expect, order)
	}

	if m.Has(KindEducation) {
		t.Fatalf("did not expect education block")
	}
}

func TestMapPutCopiesLines(t *testing.T) {
	t.Parallel()

	m := NewMap()
	lines := []string{"a"}
	m.Put(Heading{Canonical: "Навыки", Kind: KindSkills}, lines)
	lines[0] = "changed"

	b, _ := m.Get("Навыки")
	if b.Lines[0] != "a" {
		t.Fatalf("expected stored lines to be independent, got %q", b.Lines)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	lines := Normalize(`Иванов Дмитрий
преамбула
О себе
Привет

Навыки
Go
Хобби
Шахматы`)

	m := Split(lines, DefaultDictionary())

	about, ok := m.Get("О себе")
	if !ok || !reflect.DeepEqual(about.Lines, []string{"Привет", ""}) {
		t.Fatalf("unexpected about block: %+v", about)
	}

	skills, ok := m.Latest(KindSkills)
	if !ok {
		t.Fatalf("expected skills block")
	}
	// Unknown headings are content of the open section.
	if !reflect.DeepEqual(skills.Lines, []string{"Go", "Хобби", "Шахматы"}) {
		t.Fatalf("unexpected skills block: %q", skills.Lines)
	}
}

func TestSplitLastHeadingWins(t *testing.T) {
	t.Parallel()

	lines := Normalize(`Профессиональный профиль
Черновик
О себе
Финал`)

	m := Split(lines, DefaultDictionary())
	b, ok := m.Latest(KindAbout)
	if !ok || !reflect.DeepEqual(b.Lines, []string{"Финал"}) {
		t.Fatalf("expected final block to win, got %+v", b)
	}

	lines = Normalize(`О себе
Черновик
Профессиональный профиль
Финал`)

	m = Split(lines, DefaultDictionary())
	b, _ = m.Latest(KindAbout)
	if !reflect.DeepEqual(b.Lines, []string{"Финал"}) {
		t.Fatalf("expected final block to win regardless of spelling, got %+v", b)
	}
}

func TestSplitWithoutHeadings(t *testing.T) {
	t.Parallel()

	m := Split(Normalize("просто текст\nбез заголовков"), DefaultDictionary())
	if m.Len() != 0 {
		t.Fatalf("expected no sections, got %d", m.Len())
	}
}

func TestSplitterLogsReplacedBlocks(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	splitter := NewSplitter(DefaultDictionary(), zap.New(core))

	splitter.Split(Normalize("Навыки\nGo\nКлючевые навыки\nRust"))

	if observed.FilterMessage("section heading repeated, earlier block replaced").Len() != 1 {
		t.Fatalf("expected one replacement log entry, got %d", observed.FilterMessage("section heading repeated, earlier block replaced").Len())
	}
	if observed.FilterMessage("section committed").Len() != 2 {
		t.Fatalf("expected two commit log entries")
	}
}
