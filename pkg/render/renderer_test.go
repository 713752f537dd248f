package render

import (
	"strings"
	"testing"

	"github.com/aster-ui/aster/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	r := NewRenderer()
	out, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRenderElementWithText(t *testing.T) {
	got := renderString(t, vdom.Div(vdom.Class("box"), "hello"))
	if got != `<div class="box">hello</div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderEscapesTextAndAttributes(t *testing.T) {
	got := renderString(t, vdom.Div(
		vdom.NewAttr("title", `a"b<c`),
		"<script>alert(1)</script>",
	))
	if strings.Contains(got, "<script>") {
		t.Errorf("unescaped text: %q", got)
	}
	if !strings.Contains(got, `title="a&quot;b&lt;c"`) {
		t.Errorf("attr escaping: %q", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	got := renderString(t, vdom.Input(vdom.Type("checkbox")))
	if got != `<input type="checkbox">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderPresenceMarkers(t *testing.T) {
	got := renderString(t, vdom.Button(
		vdom.Disabled(true),
		vdom.DataFlag("disabled", true),
	))
	if !strings.Contains(got, " disabled") || !strings.Contains(got, " data-disabled") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, `disabled=""`) {
		t.Errorf("presence markers should be bare: %q", got)
	}
}

func TestRenderSkipsHandlers(t *testing.T) {
	got := renderString(t, vdom.Button(vdom.OnClick(func() {})))
	if strings.Contains(got, "onclick") {
		t.Errorf("handler serialized: %q", got)
	}
}

func TestRenderDataRef(t *testing.T) {
	node := vdom.Button("go")
	node.Ref = "checkbox-1"
	got := renderString(t, node)
	if !strings.Contains(got, `data-ref="checkbox-1"`) {
		t.Errorf("got %q", got)
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Span("inner")
	})
	got := renderString(t, vdom.Fragment(vdom.Div("a"), comp))
	if got != `<div>a</div><span>inner</span>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderNumericAttr(t *testing.T) {
	got := renderString(t, vdom.Input(vdom.TabIndex(-1)))
	if !strings.Contains(got, `tabindex="-1"`) {
		t.Errorf("got %q", got)
	}
}

func TestRenderPage(t *testing.T) {
	var sb strings.Builder
	err := NewRenderer().RenderPage(&sb, PageData{
		Title:      "Demo <x>",
		SessionID:  "s-1",
		Body:       vdom.Div("body"),
		ScriptPath: "/client.js",
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	got := sb.String()

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("missing doctype: %q", got)
	}
	if !strings.Contains(got, "<title>Demo &lt;x&gt;</title>") {
		t.Errorf("title: %q", got)
	}
	if !strings.Contains(got, `name="aster-session" content="s-1"`) {
		t.Errorf("session meta: %q", got)
	}
	if !strings.Contains(got, `<script src="/client.js" defer>`) {
		t.Errorf("script: %q", got)
	}
	if !strings.Contains(got, "<div>body</div>") {
		t.Errorf("body: %q", got)
	}
}
