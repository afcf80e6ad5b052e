package schema

import (
	"encoding/json"
	"fmt"
)

// ParasiteCountNotAvailable is the sentinel a form sends when no parasite
// count was measured.
const ParasiteCountNotAvailable = "not-available"

// ParasiteCount is either a concrete non-negative count or the
// not-available sentinel. An unknown count never contributes to scoring.
type ParasiteCount struct {
	Known bool
	Count int
}

func (p ParasiteCount) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return json.Marshal(ParasiteCountNotAvailable)
	}
	return json.Marshal(p.Count)
}

func (p *ParasiteCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ParasiteCountNotAvailable {
			return fmt.Errorf("invalid parasite count: %q", s)
		}
		*p = ParasiteCount{}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("parasite count cannot be negative: %d", n)
	}
	*p = ParasiteCount{Known: true, Count: n}
	return nil
}
