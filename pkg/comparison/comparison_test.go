package comparison_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formcompare/pkg/comparison"
	"github.com/goliatone/go-formcompare/pkg/overlay"
)

func orderPanes() (comparison.Pane, comparison.Pane) {
	left := comparison.Pane{Schema: "Order"}
	right := comparison.Pane{Schema: "Order"}
	return left, right
}

func TestNewRequiresName(t *testing.T) {
	left, right := orderPanes()
	if _, err := comparison.New("  ", left, right); err == nil {
		t.Fatalf("expected name error")
	}
}

func TestNewRequiresSchema(t *testing.T) {
	_, err := comparison.New("order-review", comparison.Pane{}, comparison.Pane{Schema: "Order"})
	if err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestNewRejectsSchemaMismatch(t *testing.T) {
	_, err := comparison.New("order-review",
		comparison.Pane{Schema: "Order"},
		comparison.Pane{Schema: "Invoice"},
	)
	if err == nil {
		t.Fatalf("expected mismatch error")
	}
	if !strings.Contains(err.Error(), "Order") || !strings.Contains(err.Error(), "Invoice") {
		t.Fatalf("error should name both schemas: %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	left, right := orderPanes()
	c, err := comparison.New("order-review", left, right)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if c.Left().Label != comparison.DefaultLeftLabel {
		t.Fatalf("left label: %q", c.Left().Label)
	}
	if c.Right().Label != comparison.DefaultRightLabel {
		t.Fatalf("right label: %q", c.Right().Label)
	}
	if c.Left().Name != "left" || c.Right().Name != "right" {
		t.Fatalf("pane names not defaulted: %q %q", c.Left().Name, c.Right().Name)
	}
	if c.CopyAllowed(comparison.SideLeft) || c.CopyAllowed(comparison.SideRight) {
		t.Fatalf("copy should be off by default")
	}
}

func TestNewLabelOptionsWin(t *testing.T) {
	left, right := orderPanes()
	left.Label = "Pane Label"

	c, err := comparison.New("order-review", left, right,
		comparison.WithLeftLabel("Option Label"),
		comparison.WithRightLabel("Model Output"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.Left().Label != "Option Label" {
		t.Fatalf("option should override pane label: %q", c.Left().Label)
	}
	if c.Right().Label != "Model Output" {
		t.Fatalf("right label: %q", c.Right().Label)
	}
}

func TestNewOverlayFillsUnsetLabels(t *testing.T) {
	store := loadOverlay(t)
	left, right := orderPanes()

	c, err := comparison.New("order-review", left, right, comparison.WithOverlay(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.Left().Label != "Expected Order" || c.Right().Label != "Extracted Order" {
		t.Fatalf("overlay labels not applied: %q %q", c.Left().Label, c.Right().Label)
	}
	if c.Legend() != "<strong>QA legend</strong>" {
		t.Fatalf("legend not applied: %q", c.Legend())
	}
}

func TestNewOverlayDoesNotOverrideExplicitLabels(t *testing.T) {
	store := loadOverlay(t)
	left, right := orderPanes()

	c, err := comparison.New("order-review", left, right,
		comparison.WithOverlay(store),
		comparison.WithLeftLabel("Gold Standard"),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.Left().Label != "Gold Standard" {
		t.Fatalf("explicit label lost: %q", c.Left().Label)
	}
	if c.Right().Label != "Extracted Order" {
		t.Fatalf("unset label should come from overlay: %q", c.Right().Label)
	}
}

func TestCopyAllowed(t *testing.T) {
	left, right := orderPanes()
	right.Disabled = true

	c, err := comparison.New("order-review", left, right,
		comparison.WithCopyToLeft(),
		comparison.WithCopyToRight(),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if !c.CopyAllowed(comparison.SideLeft) {
		t.Fatalf("copy to left should be allowed")
	}
	if c.CopyAllowed(comparison.SideRight) {
		t.Fatalf("copy into a disabled pane should be blocked")
	}
	if c.CopyAllowed(comparison.Side("middle")) {
		t.Fatalf("unknown side should report false")
	}
}

func loadOverlay(t *testing.T) *overlay.Store {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "overlay.yaml"))
	if err != nil {
		t.Fatalf("read overlay: %v", err)
	}
	store, err := overlay.Load(data)
	if err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	return store
}
