package signal

import "testing"

func TestGeometryScaling(t *testing.T) {
	g1 := NewGeometry(1)
	g2 := NewGeometry(2)
	if g2.V != 2*g1.V || g2.H != 2*g1.H {
		t.Fatalf("expected geometry to scale linearly with S, got g1=%+v g2=%+v", g1, g2)
	}
	if g1.Bot != g1.TOP+g1.VisLines {
		t.Fatalf("BOT must equal TOP+VISLINES, got %d", g1.Bot)
	}
	if g1.SignalLen != g1.V*g1.H {
		t.Fatalf("SIGNAL_LEN must equal V*H, got %d want %d", g1.SignalLen, g1.V*g1.H)
	}
	if g1.VisStart <= g1.PicStart || g1.VisEnd >= g1.PicStart+g1.PicLen {
		t.Fatalf("visible window must sit strictly inside the picture window")
	}
}

func TestInputSignalWrapRow(t *testing.T) {
	geo := NewGeometry(1)
	s := New(geo)
	s.Set(0, 5, White)
	s.Set(0, 6, Black)
	s.WrapRow()
	if s.Sig[geo.V][5] != White || s.Sig[geo.V][6] != Black {
		t.Fatalf("expected row V to duplicate row 0 after WrapRow")
	}
}

func TestInputSignalWrapIndexing(t *testing.T) {
	geo := NewGeometry(1)
	s := New(geo)
	s.Set(0, 0, White)
	if got := s.At(0, geo.H); got != White {
		t.Fatalf("expected x index to wrap modulo H, got %v", got)
	}
	if got := s.At(geo.V+1, 0); got != s.At(0, 0) {
		t.Fatalf("expected y index to wrap modulo V+1")
	}
}

func TestInputSignalOffsetRoundTrip(t *testing.T) {
	geo := NewGeometry(1)
	s := New(geo)
	s.Set(3, 17, Gray50)
	ofs := s.Offset(3, 17)
	if got := s.AtOffset(ofs); got != Gray50 {
		t.Fatalf("AtOffset(Offset(y,x)) = %v, want %v", got, Gray50)
	}
	if got := s.AtOffset(ofs + geo.SignalLen); got != Gray50 {
		t.Fatalf("AtOffset must wrap modulo SignalLen")
	}
}
