package specs

// degComp packs a per-vertex (deg, comp) pair into one scratch word for
// the families that track a union-find-style component id alongside a
// small degree counter (single cycle, Hamiltonian cycle, s-t path,
// tree, two-colour cycles). deg occupies the low 4 bits (0..2, plus a
// transient 3 for an over-degree vertex, which its leaving check
// rejects); comp occupies the remaining bits. A
// slot is "erased" by writing erasedSlot once its vertex has retired
// and will never be read again.
const erasedSlot int64 = -1

func packDegComp(deg int, comp int) int64 {
	return int64(comp)<<4 | int64(deg&0xF)
}

func unpackDeg(s int64) int {
	return int(s & 0xF)
}

func unpackComp(s int64) int {
	return int(s >> 4)
}

// mergeComponent rewrites every frontier vertex whose comp equals cmin
// to cmax, the standard union-by-replace-min-with-max rule the frontier
// method uses so that "same component" reduces to integer equality.
func mergeComponent(scratch []int64, sched slotter, frontierVs []int, cmin, cmax int) {
	if cmin == cmax {
		return
	}
	for _, v := range frontierVs {
		pos := sched.mustSlot(v)
		if unpackComp(scratch[pos]) == cmin {
			scratch[pos] = packDegComp(unpackDeg(scratch[pos]), cmax)
		}
	}
}

// componentClosed reports whether, among frontierVs excluding v and any
// vertex already retired earlier in the same leaving step (retired),
// some other live vertex shares v's component (compFound) or carries a
// nonzero degree (degFound).
func componentClosed(scratch []int64, sched slotter, frontierVs []int, v int, retired map[int]bool) (compFound, degFound bool) {
	vComp := unpackComp(scratch[sched.mustSlot(v)])
	for _, w := range frontierVs {
		if w == v || retired[w] {
			continue
		}
		pos := sched.mustSlot(w)
		if unpackComp(scratch[pos]) == vComp {
			compFound = true
		}
		if unpackDeg(scratch[pos]) > 0 {
			degFound = true
		}
	}
	return compFound, degFound
}

// anyOtherLive reports whether frontierVs contains a vertex other than
// v that has not already retired earlier in the same leaving step.
func anyOtherLive(frontierVs []int, v int, retired map[int]bool) bool {
	for _, w := range frontierVs {
		if w != v && !retired[w] {
			return true
		}
	}
	return false
}

// slotter is the minimal frontier.Schedule surface the degcomp helpers
// need.
type slotter interface {
	mustSlot(v int) int
}
