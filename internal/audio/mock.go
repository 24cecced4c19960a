package audio

// MockSink is an in-memory Sink for tests.
type MockSink struct {
	rng        Range
	level      float64
	rangeErr   error
	currentErr error
	setErr     error
	sets       []float64
}

// NewMockSink creates a MockSink whose level starts at r.Min.
func NewMockSink(r Range) *MockSink {
	return &MockSink{rng: r, level: r.Min}
}

// SetRangeError makes Range fail.
func (m *MockSink) SetRangeError(err error) { m.rangeErr = err }

// SetCurrentError makes Current fail.
func (m *MockSink) SetCurrentError(err error) { m.currentErr = err }

// SetSetError makes SetCurrent fail.
func (m *MockSink) SetSetError(err error) { m.setErr = err }

// SetLevel changes the level as another process would.
func (m *MockSink) SetLevel(level float64) { m.level = level }

// Sets returns every level passed to SetCurrent, including failed ones.
func (m *MockSink) Sets() []float64 { return m.sets }

func (m *MockSink) Range() (Range, error) {
	if m.rangeErr != nil {
		return Range{}, m.rangeErr
	}
	return m.rng, nil
}

func (m *MockSink) Current() (float64, error) {
	if m.currentErr != nil {
		return 0, m.currentErr
	}
	return m.level, nil
}

func (m *MockSink) SetCurrent(level float64) error {
	m.sets = append(m.sets, level)
	if m.setErr != nil {
		return m.setErr
	}
	m.level = level
	return nil
}
