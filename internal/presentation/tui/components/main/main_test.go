package mainview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:  100,
		Height: 50,
		Header: "HEADER",
		Body:   "BODY",
	}

	got := Render(props)

	for _, want := range []string{"HEADER", "BODY"} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %s", want)
		}
	}
	if strings.Index(got, "HEADER") > strings.Index(got, "BODY") {
		t.Errorf("unexpected order in %q", got)
	}
}

func TestRender_ClipsToHeight(t *testing.T) {
	got := Render(Props{Width: 20, Height: 2, Body: "one\ntwo\nthree"})
	if strings.Contains(got, "three") {
		t.Errorf("Render() = %q, want body clipped to 2 lines", got)
	}
}
