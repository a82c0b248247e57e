package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"roi_projector/pkg/core/roi"
)

func TestParse_StrictJSON(t *testing.T) {
	s, err := Parse([]byte(`{"mode":"region","area_type":"rural","invited_members":50,"land_base":900}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode != "region" || s.InvitedMembers != 50 {
		t.Errorf("unexpected scenario: %+v", s)
	}
	if s.LandBase == nil || *s.LandBase != 900 {
		t.Errorf("expected land base 900, got %v", s.LandBase)
	}
}

func TestParse_RepairsBrokenJSON(t *testing.T) {
	s, err := Parse([]byte(`{'mode': 'zip', "invited_members": 10,}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode != "zip" || s.InvitedMembers != 10 {
		t.Errorf("unexpected scenario: %+v", s)
	}
}

func TestLoadFile_HJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.hjson")
	content := `{
  # dense downtown lot
  name: downtown
  mode: postal
  area_type: city
  invited_members: 200
  invite_multiplier: 100
  monthly_spend: 200
  land_base: 80
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "downtown" || s.AreaType != "city" {
		t.Errorf("unexpected scenario: %+v", s)
	}

	in, err := s.Apply(roi.DefaultInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := roi.Project(in)
	if p.LandValue != 80 {
		t.Errorf("expected land value 80, got %f", p.LandValue)
	}
	if p.LandlordShareOneTime < 160.5-1e-6 || p.LandlordShareOneTime > 160.5+1e-6 {
		t.Errorf("expected one-time landlord share 160.5, got %f", p.LandlordShareOneTime)
	}
}

func TestApply_KeepsBaseForZeroFields(t *testing.T) {
	base := roi.DefaultInputs()
	base.LandValue = 12

	s := &Scenario{MonthlySpend: 5000}
	in, err := s.Apply(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.MonthlySpend != roi.MaxMonthlySpend {
		t.Errorf("expected spend clamped to %f, got %f", roi.MaxMonthlySpend, in.MonthlySpend)
	}
	if in.InvitedMembers != base.InvitedMembers || in.Mode != base.Mode {
		t.Errorf("base fields should be kept: %+v", in)
	}
	if in.LandValue != 12 {
		t.Errorf("expected land value carried over, got %f", in.LandValue)
	}
}

func TestApply_UnknownArea(t *testing.T) {
	s := &Scenario{AreaType: "suburb"}
	if _, err := s.Apply(roi.DefaultInputs()); !errors.Is(err, roi.ErrUnknownArea) {
		t.Errorf("expected ErrUnknownArea, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParse_MultilineHJSON(t *testing.T) {
	s, err := Parse([]byte("{\n  area_type: city\n  monthly_spend: 300\n  land_base: 80\n}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AreaType != "city" {
		t.Errorf("expected area type 'city', got %q", s.AreaType)
	}
	if s.MonthlySpend != 300 {
		t.Errorf("expected monthly spend 300, got %f", s.MonthlySpend)
	}
	if s.LandBase == nil || *s.LandBase != 80 {
		t.Errorf("expected land base 80, got %v", s.LandBase)
	}

	in, err := s.Apply(roi.DefaultInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.AreaType != roi.AreaCity || in.LandValue != 80 {
		t.Errorf("unexpected inputs: %+v", in)
	}
}

func TestParse_HJSONWithComment(t *testing.T) {
	payload := "{\n  # downtown\n  mode: zip\n  area_type: city\n  invited_members: 50\n  land_base: 4000\n}"
	s, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode != "zip" || s.AreaType != "city" || s.InvitedMembers != 50 {
		t.Errorf("unexpected scenario: %+v", s)
	}
	if s.LandBase == nil || *s.LandBase != 4000 {
		t.Errorf("expected land base 4000, got %v", s.LandBase)
	}
}

func TestHasMultilineField(t *testing.T) {
	if (&Scenario{Mode: "zip"}).hasMultilineField() {
		t.Error("single-line fields should pass")
	}
	if !(&Scenario{AreaType: "city\n  monthly_spend: 300"}).hasMultilineField() {
		t.Error("expected swallowed lines to be flagged")
	}
}
