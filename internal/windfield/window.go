package windfield

// Reconstruct runs the full aggregation pass: structural validation,
// sliding 4-sample windows with stride 1, per-window validation under the
// configured policy, and assembly of the output table.
//
// The call is a pure single-shot transform. The only error path is the
// upfront column validation; every later failure mode is expressed as
// skipped or NaN-filled rows.
func Reconstruct(cols Columns, p Params) (*Table, error) {
	if err := cols.validate(p.Model); err != nil {
		return nil, err
	}
	samples := cols.samples(p)

	switch p.Policy {
	case PolicyStrict:
		return reconstructStrict(samples, p), nil
	default:
		return reconstructReorder(samples, p), nil
	}
}

// slotByLOS places the four samples of a window into slots indexed by los
// id. It reports false when the los ids are not exactly {0,1,2,3}.
func slotByLOS(raw *[4]Sample, window *[4]Sample) bool {
	var found [4]bool
	for _, s := range raw {
		if s.LOS < 0 || s.LOS > 3 {
			return false
		}
		if found[s.LOS] {
			return false
		}
		found[s.LOS] = true
		window[s.LOS] = s
	}
	return true
}

// reconstructReorder scans the sample stream accepting any window whose los
// ids form the full beam cycle, regardless of raw order. Rejected windows
// are skipped; accepted windows are kept only if at least one plane
// validated, so the output has no all-invalid rows.
func reconstructReorder(samples []Sample, p Params) *Table {
	t := newTable()
	for i := 0; i+4 <= len(samples); i++ {
		raw := [4]Sample{samples[i], samples[i+1], samples[i+2], samples[i+3]}

		var window [4]Sample
		if !slotByLOS(&raw, &window) {
			continue
		}

		desc := assembleWindfield(raw[0].Time, &window, p)
		if desc.Upper.Status == 1 || desc.Lower.Status == 1 {
			t.append(desc)
		}
	}
	return t
}

// strictWindowOK validates a window under the strict-order policy: los ids
// already in beam-cycle order, all status flags good, and the timestamp
// span below the configured bound.
func strictWindowOK(w []Sample, maxSpan int64) bool {
	minTime, maxTime := w[0].Time, w[0].Time
	for k, s := range w {
		if s.LOS != k || s.Status == 0 {
			return false
		}
		if s.Time < minTime {
			minTime = s.Time
		}
		if s.Time > maxTime {
			maxTime = s.Time
		}
	}
	return maxTime-minTime < maxSpan
}

// reconstructStrict scans pre-sorted beam cycles. Every input index yields
// exactly one output row: windows failing the order/status/duration checks,
// and the trailing indices with fewer than four samples left, produce
// all-NaN rows so the output stays aligned with the input.
func reconstructStrict(samples []Sample, p Params) *Table {
	maxSpan := p.maxWindowSpanNanos()
	t := newTable()
	for i := range samples {
		if i+4 > len(samples) || !strictWindowOK(samples[i:i+4], maxSpan) {
			t.append(nanWindfield(samples[i].Time))
			continue
		}
		window := [4]Sample{samples[i], samples[i+1], samples[i+2], samples[i+3]}
		t.append(assembleWindfield(samples[i].Time, &window, p))
	}
	return t
}
