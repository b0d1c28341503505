package dsp

import "testing"

func TestJumpMatchesReplay(t *testing.T) {
	const seed = 0xC0FFEE
	for _, steps := range []uint64{0, 1, 2, 7, 100, 2048, 65537} {
		replay := NewLCG(seed)
		var want uint32 = seed
		for i := uint64(0); i < steps; i++ {
			want = replay.Next()
		}
		got := Jump(seed, steps)
		if steps == 0 {
			want = seed
		}
		if got != want {
			t.Fatalf("Jump(seed, %d) = %d, want %d (replay)", steps, got, want)
		}
	}
}

func TestJumpIsThreadSplitInvariant(t *testing.T) {
	const seed = 42
	const total = 8192
	single := NewLCG(seed)
	var singleVals [total]uint32
	for i := range singleVals {
		singleVals[i] = single.Next()
	}

	// Split into 4 blocks of 2048, each seeking independently via Jump.
	const blocks = 4
	const blockLen = total / blocks
	for b := 0; b < blocks; b++ {
		start := b * blockLen
		l := JumpedLCG(seed, uint64(start))
		for i := 0; i < blockLen; i++ {
			got := l.Next()
			want := singleVals[start+i]
			if got != want {
				t.Fatalf("block %d sample %d: got %d want %d", b, i, got, want)
			}
		}
	}
}

func TestToUniformRange(t *testing.T) {
	for _, v := range []uint32{0, 1, 1 << 31, 0xFFFFFFFF} {
		u := ToUniform(v, -5, 5)
		if u < -5 || u >= 5 {
			t.Fatalf("ToUniform(%d) = %v out of [-5,5)", v, u)
		}
	}
}
