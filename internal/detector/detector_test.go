package detector

import (
	"errors"
	"testing"
)

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetHands([]HandLandmarks{OpenPalmLandmarks(), OpenPalmLandmarks()})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("counts calls", func(t *testing.T) {
		mock := NewMockDetector()
		mock.Detect(nil)
		mock.Detect(nil)

		if mock.Calls() != 2 {
			t.Errorf("Calls() = %d, want 2", mock.Calls())
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 || cfg.MinTrackingConf != 0.7 {
		t.Errorf("confidence = (%v, %v), want (0.7, 0.7)", cfg.MinConfidence, cfg.MinTrackingConf)
	}
}

func TestSelectHand(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		hand, ok := SelectHand(nil)
		if ok || hand != nil {
			t.Errorf("SelectHand(nil) = (%v, %v), want (nil, false)", hand, ok)
		}
	})

	t.Run("first hand wins", func(t *testing.T) {
		first := OpenPalmLandmarks()
		first.Handedness = "Left"
		second := OpenPalmLandmarks()

		hand, ok := SelectHand([]HandLandmarks{first, second})
		if !ok {
			t.Fatal("expected a hand")
		}
		if hand.Handedness != "Left" {
			t.Errorf("Handedness = %s, want Left", hand.Handedness)
		}
	})
}

func TestPinchLandmarks(t *testing.T) {
	thumb := Point3D{X: 0.1, Y: 0.2}
	index := Point3D{X: 0.3, Y: 0.4}

	hand := PinchLandmarks(thumb, index)

	if hand.Points[ThumbTip] != thumb {
		t.Errorf("thumb tip = %v, want %v", hand.Points[ThumbTip], thumb)
	}
	if hand.Points[IndexTip] != index {
		t.Errorf("index tip = %v, want %v", hand.Points[IndexTip], index)
	}
	if hand.Points[MiddleTip] != OpenPalmLandmarks().Points[MiddleTip] {
		t.Error("other landmarks should match the open palm")
	}
}

func TestHandConnections(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range HandConnections {
		for _, id := range []int{c.From, c.To} {
			if id < 0 || id >= NumLandmarks {
				t.Fatalf("connection %v references invalid landmark %d", c, id)
			}
			seen[id] = true
		}
	}

	if len(seen) != NumLandmarks {
		t.Errorf("skeleton covers %d landmarks, want %d", len(seen), NumLandmarks)
	}
}
