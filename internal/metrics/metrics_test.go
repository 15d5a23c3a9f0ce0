package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounts(t *testing.T) {
	c := New()

	c.FrameDone(0.016, 12)
	c.FrameDone(0.1, 7)
	c.CoinCollected(10)
	c.CoinCollected(50)
	c.PlayerHit(1.0)
	c.PlayerHit(0.5)
	c.LevelCompleted(1, 420)
	c.PlayerDied(2)
	c.GameOver(false, 900, 3)
	c.GameOver(true, 5000, 10)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"frames", testutil.ToFloat64(c.frames), 2},
		{"nearby is the last frame", testutil.ToFloat64(c.nearby), 7},
		{"coins", testutil.ToFloat64(c.coins), 2},
		{"coin points", testutil.ToFloat64(c.coinPoints), 60},
		{"hits", testutil.ToFloat64(c.hits), 2},
		{"damage", testutil.ToFloat64(c.damage), 1.5},
		{"levels", testutil.ToFloat64(c.levels), 1},
		{"deaths", testutil.ToFloat64(c.deaths), 1},
		{"lost runs", testutil.ToFloat64(c.gamesOver.WithLabelValues("lost")), 1},
		{"won runs", testutil.ToFloat64(c.gamesOver.WithLabelValues("won")), 1},
		{"max level", testutil.ToFloat64(c.maxLevel), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestMaxLevelNeverDecreases(t *testing.T) {
	c := New()
	c.LevelCompleted(5, 100)
	c.GameOver(false, 0, 2)

	if got := testutil.ToFloat64(c.maxLevel); got != 5 {
		t.Errorf("max level = %v, expected 5", got)
	}
}

func TestNegativeDamageIgnored(t *testing.T) {
	c := New()
	c.PlayerHit(-1)

	if got := testutil.ToFloat64(c.damage); got != 0 {
		t.Errorf("damage = %v, expected 0", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.CoinCollected(10)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "sandrunner_coins_collected_total 1") {
		t.Errorf("scrape should include the coin counter, got:\n%s", body)
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.PlayerDied(0)

	if got := testutil.ToFloat64(b.deaths); got != 0 {
		t.Errorf("second collector deaths = %v, expected 0", got)
	}
}
