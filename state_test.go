package abgeltung

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestState_Lots(t *testing.T) {
	s := NewState(2022)
	lot, _ := NewLot(buy("EUNL", at(2021, time.March, 2), 10, 50), Q(10))
	s.SetLots("EUNL", Lots{lot})

	got := s.Lots("EUNL")
	got[0].remaining = Q(1)
	if !s.Lots("EUNL")[0].Remaining().Equal(Q(10)) {
		t.Error("Lots() must return a copy")
	}

	s.SetLots("EUNL", nil)
	if len(s.Lots("EUNL")) != 0 || len(s.Tickers()) != 0 {
		t.Error("SetLots(nil) must remove the ticker")
	}
}

func TestState_VorabpauschalePerShare(t *testing.T) {
	s := NewState(2022)
	s.SetVorabpauschalePerShare("VUSA", dec("0.5"))
	s.SetVorabpauschalePerShare("EUNL", decimal.Zero)
	if got := s.VorabpauschalePerShare("VUSA"); !got.Equal(dec("0.5")) {
		t.Errorf("VorabpauschalePerShare(VUSA) = %s, want 0.5", got)
	}
	if got := s.Tickers(); !slices.Equal(got, []string{"VUSA"}) {
		t.Errorf("Tickers() = %v, want [VUSA]", got)
	}
}

func TestState_Tickers(t *testing.T) {
	s := NewState(2022)
	lot, _ := NewLot(buy("VUSA", at(2021, time.March, 2), 10, 50), Q(10))
	s.SetLots("VUSA", Lots{lot})
	s.SetVorabpauschalePerShare("VUSA", dec("0.5"))
	s.SetVorabpauschalePerShare("EUNL", dec("0.2"))
	if got, want := s.Tickers(), []string{"EUNL", "VUSA"}; !slices.Equal(got, want) {
		t.Errorf("Tickers() = %v, want %v", got, want)
	}
}

func TestState_Nil(t *testing.T) {
	var s *State
	if s.Lots("EUNL") != nil || !s.VorabpauschalePerShare("EUNL").IsZero() || s.Tickers() != nil {
		t.Error("a nil state must be empty")
	}
}
