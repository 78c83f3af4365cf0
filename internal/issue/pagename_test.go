package issue

import "testing"

func TestParsePageName(t *testing.T) {
	tests := []struct {
		name string
		file string
		want PageName
		ok   bool
	}{
		{name: "plain page", file: "NGM_1994_08_001.jpg", want: PageName{Year: 1994, Month: 8, Seq: 1}, ok: true},
		{name: "letter suffix", file: "NGM_1994_08_051B.jpg", want: PageName{Year: 1994, Month: 8, Seq: 51, Suffix: "B"}, ok: true},
		{name: "sub index", file: "NGM_1994_08_0511.jpg", want: PageName{Year: 1994, Month: 8, Seq: 51, Sub: 1}, ok: true},
		{name: "sub index and suffix", file: "NGM_1994_08_0512b.jpg", want: PageName{Year: 1994, Month: 8, Seq: 51, Sub: 2, Suffix: "B"}, ok: true},
		{name: "lowercase with jpeg extension", file: "ngm_2001_12_100a.jpeg", want: PageName{Year: 2001, Month: 12, Seq: 100, Suffix: "A"}, ok: true},
		{name: "other prefix", file: "NGS_1950_01_009.jpg", want: PageName{Year: 1950, Month: 1, Seq: 9}, ok: true},

		{name: "no pattern at all", file: "aaa_cover.jpg"},
		{name: "missing prefix", file: "1994_08_001.jpg"},
		{name: "two digit year", file: "NGM_94_08_001.jpg"},
		{name: "one digit month", file: "NGM_1994_8_001.jpg"},
		{name: "two digit sequence", file: "NGM_1994_08_01.jpg"},
		{name: "underscore before sub index", file: "NGM_1994_08_001_1.jpg"},
		{name: "wrong extension", file: "NGM_1994_08_001.png"},
		{name: "trailing junk", file: "NGM_1994_08_001.jpg.bak"},
		{name: "five digit sequence", file: "NGM_1994_08_00123.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePageName(tt.file)
			if ok != tt.ok {
				t.Fatalf("ParsePageName(%q) ok = %v, want %v", tt.file, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePageName(%q) = %+v, want %+v", tt.file, got, tt.want)
			}
		})
	}
}

func TestPageNameLess(t *testing.T) {
	// Fully ordered: every element must sort strictly before every later one.
	// Year dominates month, month dominates sequence, and so on down to the
	// letter suffix.
	ordered := []PageName{
		{Year: 1993, Month: 12, Seq: 999},
		{Year: 1994, Month: 7, Seq: 500},
		{Year: 1994, Month: 8, Seq: 2},
		{Year: 1994, Month: 8, Seq: 51},
		{Year: 1994, Month: 8, Seq: 51, Suffix: "B"},
		{Year: 1994, Month: 8, Seq: 51, Sub: 1},
		{Year: 1994, Month: 8, Seq: 51, Sub: 1, Suffix: "B"},
		{Year: 1994, Month: 8, Seq: 51, Sub: 2},
		{Year: 1994, Month: 8, Seq: 100},
	}

	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Less(ordered[j])
			want := i < j
			if got != want {
				t.Errorf("(%+v).Less(%+v) = %v, want %v", ordered[i], ordered[j], got, want)
			}
		}
	}
}
