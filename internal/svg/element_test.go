package svg

import "testing"

func TestSetUpsertsKeepingPosition(t *testing.T) {
	el := New("rect")
	el.Set("x", "1")
	el.Set("fill", "red")
	el.Set("x", "2")

	if len(el.Attrs) != 2 {
		t.Fatalf("expected upsert, not append, got %d attributes", len(el.Attrs))
	}
	if el.Attrs[0].Name != "x" || el.Attrs[0].Value != "2" {
		t.Fatalf("expected updated value in original position, got %+v", el.Attrs)
	}
	if value, ok := el.Get("fill"); !ok || value != "red" {
		t.Fatalf("expected untouched attribute to survive, got %q", value)
	}
}

func TestAddClassDeduplicates(t *testing.T) {
	el := Group().AddClass("card").AddClass("active").AddClass("card")

	class, _ := el.Get("class")
	if class != "card active" {
		t.Fatalf("expected deduplicated class list, got %q", class)
	}
	if !el.HasClass("active") || el.HasClass("missing") {
		t.Fatalf("unexpected class membership for %q", class)
	}
}

func TestNumFormatsCoordinates(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		10:      "10",
		10.5:    "10.5",
		10.25:   "10.25",
		-0.5:    "-0.5",
		2.50:    "2.5",
		1.0 / 3: "0.33",
	}
	for input, want := range cases {
		if got := Num(input); got != want {
			t.Fatalf("Num(%v): expected %q, got %q", input, want, got)
		}
	}
}

func TestAnchorFallsBackToGroup(t *testing.T) {
	child := Rect(0, 0, 10, 10)

	plain := Anchor("", child)
	if plain.Tag != "g" {
		t.Fatalf("expected group for empty href, got %q", plain.Tag)
	}
	if len(plain.Children) != 1 {
		t.Fatalf("expected child to survive the fallback")
	}

	link := Anchor("/individual/I1", child)
	if link.Tag != "a" {
		t.Fatalf("expected anchor element, got %q", link.Tag)
	}
	if href, _ := link.Get("href"); href != "/individual/I1" {
		t.Fatalf("unexpected href: %q", href)
	}
}

func TestIDFromRefRoundTrips(t *testing.T) {
	if got := IDFromRef(URLRef("fill-0")); got != "fill-0" {
		t.Fatalf("expected round trip, got %q", got)
	}
	if got := IDFromRef("fill-0"); got != "" {
		t.Fatalf("expected empty id for bare string, got %q", got)
	}
	if got := IDFromRef("url(#fill-0"); got != "" {
		t.Fatalf("expected empty id for unterminated reference, got %q", got)
	}
}

func TestCountByTagWalksSubtree(t *testing.T) {
	root := Group().Append(
		Group().Append(Rect(0, 0, 1, 1), Rect(0, 0, 1, 1)),
		Rect(0, 0, 1, 1),
		Text(0, 0, "label"),
	)

	if count := root.CountByTag("rect"); count != 3 {
		t.Fatalf("expected three rects, got %d", count)
	}
	if count := root.CountByTag("g"); count != 2 {
		t.Fatalf("expected two groups including the root, got %d", count)
	}
	if count := root.CountByTag("circle"); count != 0 {
		t.Fatalf("expected no circles, got %d", count)
	}
}

func TestLinearGradientBuildsStops(t *testing.T) {
	grad := LinearGradient("fill-0",
		GradientStop{Offset: 0, Color: "#ffffff"},
		GradientStop{Offset: 1, Color: "#000000"},
	)

	if grad.Tag != "linearGradient" || grad.ID() != "fill-0" {
		t.Fatalf("unexpected gradient element: %q id %q", grad.Tag, grad.ID())
	}
	if len(grad.Children) != 2 {
		t.Fatalf("expected two stops, got %d", len(grad.Children))
	}

	first := grad.Children[0]
	if offset, _ := first.Get("offset"); offset != "0" {
		t.Fatalf("unexpected first stop offset: %q", offset)
	}
	if color, _ := first.Get("stop-color"); color != "#ffffff" {
		t.Fatalf("unexpected first stop color: %q", color)
	}
	if _, ok := first.Get("stop-opacity"); ok {
		t.Fatalf("expected no opacity attribute for fully opaque stops")
	}
}

func TestShapeConstructorsSetGeometry(t *testing.T) {
	rect := Rect(1, 2, 3, 4)
	for name, want := range map[string]string{"x": "1", "y": "2", "width": "3", "height": "4"} {
		if got, _ := rect.Get(name); got != want {
			t.Fatalf("rect %s: expected %q, got %q", name, want, got)
		}
	}

	line := Line(0, 0, 10, 20)
	if x2, _ := line.Get("x2"); x2 != "10" {
		t.Fatalf("unexpected line endpoint: %q", x2)
	}

	text := Text(5, 6, "hello")
	if text.Text != "hello" {
		t.Fatalf("unexpected text content: %q", text.Text)
	}
}
