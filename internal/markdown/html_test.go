package markdown

import (
	"strings"
	"testing"
)

func TestToHTML_RendersTablesAndDetails(t *testing.T) {
	s := minimalSummary()
	s.Passed = []string{"CalcTest.Subtracts"}
	doc := Render(s, Options{MaxFailing: -1})

	out, err := ToHTML([]byte(doc))
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<h1>GTest Summary</h1>",
		"<table>",
		"<th>TestSuite</th>",
		"<td>CalcTest</td>",
		"<h2>Totals</h2>",
		"<strong>CalcTest.Adds</strong>",
		"<details><summary>Passed TestCases (1)</summary>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ToHTML() missing %q in:\n%s", want, html)
		}
	}
}

func TestHTMLPage(t *testing.T) {
	out, err := HTMLPage("A <b> & C", []byte("# Hi\n"))
	if err != nil {
		t.Fatalf("HTMLPage() error = %v", err)
	}
	page := string(out)
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("HTMLPage() missing doctype: %q", page)
	}
	if !strings.Contains(page, "<title>A &lt;b&gt; &amp; C</title>") {
		t.Errorf("HTMLPage() did not escape title: %q", page)
	}
	if !strings.Contains(page, "<h1>Hi</h1>") {
		t.Errorf("HTMLPage() missing body: %q", page)
	}
}

func TestHTMLPage_DefaultTitle(t *testing.T) {
	out, err := HTMLPage("", []byte("x\n"))
	if err != nil {
		t.Fatalf("HTMLPage() error = %v", err)
	}
	if !strings.Contains(string(out), "<title>"+DefaultTitle+"</title>") {
		t.Errorf("HTMLPage() = %q, want default title", out)
	}
}
