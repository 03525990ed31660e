package ratelimit

import (
	"time"

	"github.com/virel-project/virel-runtime/util"
)

type info struct {
	Count     int
	LastClear int64
	BanEnds   int64
}

func New(maxPerMinute int) *Limit {
	return &Limit{
		maxPerMinute: maxPerMinute,
		info:         make(map[string]*info),
		now:          func() int64 { return time.Now().Unix() },
	}
}

// Limit counts actions per key over one minute windows. A key exceeding the limit
// is banned for two minutes.
type Limit struct {
	maxPerMinute int
	info         map[string]*info
	now          func() int64

	util.Mutex
}

func (l *Limit) CanAct(key string, amount int) bool {
	t := l.now()

	l.Lock()
	defer l.Unlock()

	inf := l.info[key]
	if inf == nil {
		inf = &info{LastClear: t}
		l.info[key] = inf
	}

	if inf.BanEnds > t {
		return false
	}
	if inf.LastClear+60 < t {
		inf.LastClear = t
		inf.Count = 0
	}

	inf.Count += amount

	if inf.Count > l.maxPerMinute {
		inf.BanEnds = t + 120
		return false
	}
	return true
}
