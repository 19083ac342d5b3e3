package timesheet

// WorkedHours sums the durations of the punch pairs entered for one day.
// A pair contributes only when both of its ends are present; each pair is
// rounded to two decimals before summing. An empty record yields zero.
//
// The returned error identifies the first malformed punch; the caller
// decides whether to fail the day or the whole ingestion.
func WorkedHours(rec DayRecord) (Amount, error) {
	total := ZeroHours()
	for pair := 0; pair < 2; pair++ {
		if !rec.PairPresent(pair) {
			continue
		}
		in, err := parsePunch(rec, PunchSlot(pair*2))
		if err != nil {
			return ZeroHours(), err
		}
		out, err := parsePunch(rec, PunchSlot(pair*2+1))
		if err != nil {
			return ZeroHours(), err
		}
		total = total.Add(Duration(in, out))
	}
	return total, nil
}

func parsePunch(rec DayRecord, slot PunchSlot) (Clock, error) {
	c, err := ParseClock(rec.Punches[slot])
	if err != nil {
		return Clock{}, &InvalidTimeError{Value: rec.Punches[slot], Slot: slot}
	}
	return c, nil
}
