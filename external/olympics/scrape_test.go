package olympics

import "testing"

func TestParseMedalsFromText_ChecksumGate(t *testing.T) {
	t.Parallel()

	// Second row fails the checksum, third has rank 0.
	text := "<div>1 Norway 5 3 2 10</div> <div>2 Germany 4 4 4 13</div> <div>0 Austria 1 1 1 3</div>"

	rows := parseMedalsFromText(text)
	if len(rows) != 1 {
		t.Fatalf("expected 1 gated row, got %d: %+v", len(rows), rows)
	}
	if rows[0].NOC != "NOR" || rows[0].Medals.Total != 10 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}

func TestParseMedalsFromText_MultiWordNamesAndNOCFallback(t *testing.T) {
	t.Parallel()

	text := "1 United States 3 4 1 8 2 Liechtenstein 1 0 0 1"

	rows := parseMedalsFromText(text)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].NOC != "USA" {
		t.Fatalf("expected USA via name map, got %q", rows[0].NOC)
	}
	if rows[1].NOC != "LIE" {
		t.Fatalf("expected LIE via prefix fallback, got %q", rows[1].NOC)
	}
}

func TestParseMedalsFromText_FirstRowWinsPerNOC(t *testing.T) {
	t.Parallel()

	text := "1 Norway 5 3 2 10 7 Norway 1 1 1 3"

	rows := parseMedalsFromText(text)
	if len(rows) != 1 {
		t.Fatalf("expected dedupe to 1 row, got %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[0].Medals.Gold != 5 {
		t.Fatalf("expected first occurrence kept, got %+v", rows[0])
	}
}

func TestParseWikipediaMedalsHTML(t *testing.T) {
	t.Parallel()

	html := `<table>
<tr><th>Rank</th><th>NOC</th><th>G</th><th>S</th><th>B</th><th>Total</th></tr>
<tr><td>1</td><td>Norway<sup>[a]</sup></td><td>6</td><td>3</td><td>2</td><td>11</td></tr>
<tr><td>2</td><td>Netherlands</td><td>4</td><td>2</td><td>1</td><td>7</td></tr>
<tr><td>3</td><td>Germany</td><td>2</td><td>2</td><td>2</td><td>6</td></tr>
<tr><td>Totals (3 entries)</td><td>12</td><td>7</td><td>5</td><td>25</td></tr>
</table>`

	rows := parseWikipediaMedalsHTML(html)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].NOC != "NOR" || rows[0].Medals.Total != 11 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].NOC != "NED" || rows[1].Name != "Netherlands" {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
}

func TestParseMedalsHTML_ScriptJSONPayload(t *testing.T) {
	t.Parallel()

	html := `<html><head><script type="application/json">
{"props":{"medalStandings":{"medalsTable":[
  {"n_NOC":"ITA","n_NOCLong":"Italy","n_Gold":"2","n_Silver":"1","n_Bronze":"0","n_Total":"3","n_RankGold":"1"}
]}}}
</script></head><body></body></html>`

	rows := parseMedalsHTML(html)
	if len(rows) != 1 || rows[0].NOC != "ITA" || rows[0].Medals.Gold != 2 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestParseMedalsHTML_EscapedPayloadViaRegexRows(t *testing.T) {
	t.Parallel()

	// Serialized payload with escaped quotes, only recoverable after
	// unescaping, via the n_-field regex extractor.
	html := `<script>self.__next_f.push("{\"medalsTable\":no,\"n_NOC\":\"SUI\",\"n_NOCLong\":\"Switzerland\",\"n_Gold\":\"1\",\"n_Silver\":\"2\",\"n_Bronze\":\"0\",\"n_Total\":\"3\",\"n_RankGold\":\"4\"}")</script>`

	rows := parseMedalsHTML(html)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(rows), rows)
	}
	if rows[0].NOC != "SUI" || rows[0].Rank != 4 || rows[0].Medals.Silver != 2 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}

func TestParseMedalsHTML_NoDataYieldsEmpty(t *testing.T) {
	t.Parallel()

	if rows := parseMedalsHTML("<html><body><p>Geen medailles</p></body></html>"); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestExtractScriptJSONPayloads_RelevanceFilter(t *testing.T) {
	t.Parallel()

	html := `<script>var unrelated = {"foo":1};</script>` +
		`<script>var standings = {"medalsTable":[{"n_NOC":"NED"}]};</script>`

	payloads := extractScriptJSONPayloads(html)
	if len(payloads) != 1 {
		t.Fatalf("expected only the medal-relevant payload, got %d", len(payloads))
	}
	table := findMedalsTable(payloads[0])
	if len(table) != 1 {
		t.Fatalf("expected medalsTable recovered, got %v", payloads[0])
	}
}
