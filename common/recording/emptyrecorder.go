package recording

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) RecordTick(runID string, trace TickTrace) error {
	return nil
}

func (r EmptyRecorder) Close() {}
