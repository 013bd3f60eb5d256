package stream

import "encoding/json"

// Event is the wire format broadcast to connected clients while a mining run
// is in progress, playing the same role as internal/websocket's LogEntry: one
// flat struct covers every kind of event, with Kind distinguishing them and
// unused fields omitted from the JSON.
type Event struct {
	Time       string          `json:"time"`
	Kind       string          `json:"kind"`
	InstanceID string          `json:"instance_id,omitempty"`
	Seq        uint64          `json:"seq,omitempty"`
	StartedAt  string          `json:"started_at,omitempty"`
	UptimeSec  *int64          `json:"uptime_s,omitempty"`
	LastSeq    *uint64         `json:"last_seq,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Event kinds emitted over the course of a mining run.
const (
	KindHello     = "mdcopminer.hello"
	KindHeartbeat = "mdcopminer.heartbeat"
	KindLevel     = "mdcopminer.level"
	KindMDCOP     = "mdcopminer.mdcop"
)

// LevelEvent reports progress on one pattern-size level of the mining
// lattice, mirroring internal/progress.Event's fields so the same data
// reaches both the terminal reporter and any connected websocket clients.
type LevelEvent struct {
	Level      int    `json:"level"`
	SlotIndex  int    `json:"slot_index"`
	SlotCount  int    `json:"slot_count"`
	Candidates int    `json:"candidates"`
	Phase      string `json:"phase"`
}

// MDCOPEvent announces one closed MDCOP found at a given level.
type MDCOPEvent struct {
	Level             int     `json:"level"`
	Pattern           string  `json:"pattern"`
	ParticipationIndex float64 `json:"participation_index"`
	TimePrevalence    float64 `json:"time_prevalence"`
}
