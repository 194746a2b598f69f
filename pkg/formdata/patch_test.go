package formdata_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/formdata"
)

func sourceSnapshot() map[string]any {
	return map[string]any{
		"name": "Ada Lovelace",
		"reviews": []any{
			map[string]any{"rating": float64(5), "comment": "Excellent"},
			map[string]any{"rating": float64(4), "comment": "Good"},
		},
	}
}

func targetSnapshot() map[string]any {
	return map[string]any{
		"name": "A. Lovelace",
		"reviews": []any{
			map[string]any{"rating": float64(2), "comment": "Meh"},
		},
	}
}

func applyToTarget(t *testing.T, patch []byte) map[string]any {
	t.Helper()

	doc, err := json.Marshal(targetSnapshot())
	if err != nil {
		t.Fatalf("marshal target: %v", err)
	}
	out, err := formdata.ApplyPatch(doc, patch)
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(out, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return result
}

func TestPlanPatchStandardCopy(t *testing.T) {
	plan := copyop.BuildPlan("name", []string{"name"})

	patch, err := formdata.PlanPatch(plan, sourceSnapshot(), targetSnapshot())
	if err != nil {
		t.Fatalf("plan patch: %v", err)
	}

	result := applyToTarget(t, patch)
	if result["name"] != "Ada Lovelace" {
		t.Fatalf("name not replaced: %v", result["name"])
	}
}

func TestPlanPatchAddNewItem(t *testing.T) {
	controls := []string{"reviews[1].rating", "reviews[1].comment"}
	plan := copyop.BuildPlan("reviews[1]", controls, copyop.WithTargetIndex("new_9"))

	patch, err := formdata.PlanPatch(plan, sourceSnapshot(), targetSnapshot())
	if err != nil {
		t.Fatalf("plan patch: %v", err)
	}

	result := applyToTarget(t, patch)
	reviews, _ := result["reviews"].([]any)
	want := []any{
		map[string]any{"rating": float64(2), "comment": "Meh"},
		map[string]any{"rating": float64(4), "comment": "Good"},
	}
	if diff := cmp.Diff(want, reviews); diff != "" {
		t.Fatalf("reviews mismatch after add (-want +got):\n%s", diff)
	}
}

func TestPlanPatchSubfieldUpdate(t *testing.T) {
	plan := copyop.BuildPlan("reviews[0].rating", []string{"reviews[0].rating", "reviews[0].comment"})

	patch, err := formdata.PlanPatch(plan, sourceSnapshot(), targetSnapshot())
	if err != nil {
		t.Fatalf("plan patch: %v", err)
	}

	result := applyToTarget(t, patch)
	reviews, _ := result["reviews"].([]any)
	want := []any{
		map[string]any{"rating": float64(5), "comment": "Meh"},
	}
	if diff := cmp.Diff(want, reviews); diff != "" {
		t.Fatalf("subfield update mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanPatchSkipsMissingTargetSlot(t *testing.T) {
	// The source has a second review; the target list is shorter, so the
	// queued subfield write has nowhere to land and is skipped.
	plan := copyop.BuildPlan("reviews[1].rating", []string{"reviews[1].rating"})

	patch, err := formdata.PlanPatch(plan, sourceSnapshot(), targetSnapshot())
	if err != nil {
		t.Fatalf("plan patch: %v", err)
	}

	var ops []map[string]any
	if err := json.Unmarshal(patch, &ops); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected empty patch, got %v", ops)
	}
}

func TestPlanPatchSkipsMissingSourceValue(t *testing.T) {
	plan := copyop.BuildPlan("nickname", []string{"nickname"})

	patch, err := formdata.PlanPatch(plan, sourceSnapshot(), targetSnapshot())
	if err != nil {
		t.Fatalf("plan patch: %v", err)
	}
	if string(patch) != "[]" {
		t.Fatalf("expected empty patch, got %s", patch)
	}
}

func TestPlanPatchPlaceholderTargetErrors(t *testing.T) {
	// A subfield write against an unsaved placeholder item cannot be
	// expressed as a persisted patch.
	source := map[string]any{
		"reviews": []any{map[string]any{"rating": float64(5)}},
	}
	target := map[string]any{
		"reviews": []any{map[string]any{"rating": float64(1)}},
	}
	plan := copyop.Plan{
		Trigger: copyop.Decide("reviews[0].rating"),
		Ops: []copyop.Op{
			{Source: "reviews[0].rating", Target: "reviews[new_3].rating", Behavior: copyop.BehaviorUpdateExistingSubfield},
		},
	}
	if _, err := formdata.PlanPatch(plan, source, target); err == nil {
		t.Fatalf("expected placeholder target to fail pointer translation")
	}
}

func TestApplyPatchRejectsMalformed(t *testing.T) {
	if _, err := formdata.ApplyPatch([]byte(`{}`), []byte(`not json`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
