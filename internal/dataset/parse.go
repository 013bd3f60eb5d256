package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
)

// Open reads a dataset from path, transparently decompressing it first when
// the name ends in ".gz". logger, if non-nil, receives one line per
// malformed dataset line that was skipped.
func Open(path string, logger *log.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip dataset %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return Parse(r, logger)
}

// Parse reads the line-based dataset text format from r: one instance per
// line, whitespace-separated `event_type x y time_slot`. Malformed lines are
// skipped (reported to logger if non-nil, one line each). Within each event
// type, ids are assigned consecutively starting at 0 in line order.
func Parse(r io.Reader, logger *log.Logger) (*Dataset, error) {
	d := &Dataset{
		eventTypes:  make(map[string]struct{}),
		byEventType: make(map[string][]*instance.Instance),
		byTimeSlot:  make(map[instance.TimeSlot][]*instance.Instance),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		obj, err := parseLine(line, d)
		if err != nil {
			if logger != nil {
				logger.Printf("dataset: skipping malformed line %d: %v", lineNo, err)
			}
			continue
		}

		eventType := string(obj.EventType)
		d.eventTypes[eventType] = struct{}{}
		d.byEventType[eventType] = append(d.byEventType[eventType], obj)
		if _, ok := d.byTimeSlot[obj.TimeSlot]; !ok {
			d.timeSlots = append(d.timeSlots, obj.TimeSlot)
		}
		d.byTimeSlot[obj.TimeSlot] = append(d.byTimeSlot[obj.TimeSlot], obj)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	sort.Slice(d.timeSlots, func(i, j int) bool { return d.timeSlots[i] < d.timeSlots[j] })
	return d, nil
}

func parseLine(line string, d *Dataset) (*instance.Instance, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	eventType := fields[0]
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y: %w", err)
	}
	timeSlot, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid time_slot: %w", err)
	}

	id := instance.ID(len(d.byEventType[eventType]))
	return &instance.Instance{
		EventType: instance.EventType(eventType),
		ID:        id,
		X:         x,
		Y:         y,
		TimeSlot:  instance.TimeSlot(timeSlot),
	}, nil
}
