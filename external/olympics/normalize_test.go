package olympics

import "testing"

func TestParseTallyRows_DataEndpointShape(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"medalStandings": map[string]any{
			"medalsTable": []any{
				map[string]any{
					"n_NOC":      "NOR",
					"n_NOCLong":  "Norway",
					"n_RankGold": "1",
					"n_Gold":     "5",
					"n_Silver":   "3",
					"n_Bronze":   "2",
					"n_Total":    "10",
				},
				map[string]any{
					"organisation":    "NED",
					"longDescription": "Netherlands",
					"rank":            float64(2),
					"gold":            float64(4),
					"silver":          float64(2),
					"bronze":          float64(1),
					"total":           float64(7),
				},
			},
		},
	}

	rows := parseTallyRows(data)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].NOC != "NOR" || rows[0].Rank != 1 || rows[0].Medals.Total != 10 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].NOC != "NED" || rows[1].Name != "Netherlands" || rows[1].Medals.Gold != 4 {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
	if rows[1].Flag != "🇳🇱" {
		t.Fatalf("expected Dutch flag, got %q", rows[1].Flag)
	}
}

func TestParseTallyRows_HydrationWrapperShape(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"props": map[string]any{
			"pageProps": map[string]any{
				"initialMedals": map[string]any{
					"medalStandings": map[string]any{
						"medalsTable": []any{
							map[string]any{"n_NOC": "GER", "n_NOCLong": "Germany", "n_Gold": "1", "n_Silver": "0", "n_Bronze": "0", "n_Total": "1", "n_RankGold": "3"},
						},
					},
				},
			},
		},
	}

	rows := parseTallyRows(data)
	if len(rows) != 1 || rows[0].NOC != "GER" || rows[0].Rank != 3 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestParseTallyRows_BareArrayUsesIndexRank(t *testing.T) {
	t.Parallel()

	data := []any{
		map[string]any{"noc": "USA", "country": "United States", "gold": float64(2), "silver": float64(1), "bronze": float64(0), "total": float64(3)},
		map[string]any{"code": "CAN", "description": "Canada", "gold": float64(1), "silver": float64(1), "bronze": float64(1), "total": float64(3)},
	}

	rows := parseTallyRows(data)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Fatalf("expected positional ranks, got %d and %d", rows[0].Rank, rows[1].Rank)
	}
}

func TestExtractMedalTotals_PrefersTotalEntryOfMedalsNumber(t *testing.T) {
	t.Parallel()

	entry := map[string]any{
		"medalsNumber": []any{
			map[string]any{"type": "Men", "gold": float64(9), "silver": float64(9), "bronze": float64(9), "total": float64(27)},
			map[string]any{"type": "Total", "gold": float64(3), "silver": float64(2), "bronze": float64(1), "total": float64(6)},
		},
		"n_Gold": "99",
	}

	got := extractMedalTotals(entry)
	if got.Gold != 3 || got.Silver != 2 || got.Bronze != 1 || got.Total != 6 {
		t.Fatalf("unexpected totals %+v", got)
	}
}

func TestExtractMedalTotals_DisciplineSumFallback(t *testing.T) {
	t.Parallel()

	entry := map[string]any{
		"n_Gold": "0", "n_Silver": "0", "n_Bronze": "0", "n_Total": "0",
		"disciplines": []any{
			map[string]any{"total": float64(2)},
			map[string]any{"total": "3"},
		},
	}

	got := extractMedalTotals(entry)
	if got.Total != 5 {
		t.Fatalf("expected discipline sum 5, got %d", got.Total)
	}
}

func TestExtractMedalTotals_ColorSumFallback(t *testing.T) {
	t.Parallel()

	entry := map[string]any{"gold": float64(1), "silver": float64(2), "bronze": float64(0)}

	got := extractMedalTotals(entry)
	if got.Total != 3 {
		t.Fatalf("expected color sum 3, got %d", got.Total)
	}
}

func TestParseMedalNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want int
	}{
		{"12", 12},
		{float64(7), 7},
		{"12 medals", 12},
		{"abc", 0},
		{nil, 0},
		{"-3", -3},
		{float64(12.9), 12},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parseMedalNumber(tc.in); got != tc.want {
			t.Fatalf("parseMedalNumber(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseJSONLoose(t *testing.T) {
	t.Parallel()

	if got := parseJSONLoose(`{"a":1}`); got == nil {
		t.Fatal("expected direct parse to succeed")
	}
	if got := parseJSONLoose(`proxy preamble {"a":1} trailing`); got == nil {
		t.Fatal("expected loose substring parse to succeed")
	}
	if got := parseJSONLoose("no json here"); got != nil {
		t.Fatalf("expected nil for non-JSON, got %v", got)
	}
	if got := parseJSONLoose("   "); got != nil {
		t.Fatalf("expected nil for blank body, got %v", got)
	}
}
