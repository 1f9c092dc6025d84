package lead

import (
	"context"
	"strings"
	"sync"

	pkgLog "lead-intake-agent/pkg/log"
)

// Collector accumulates a Lead Record across turns of one session.
// Fields are first-write-wins: once present they are never overwritten or cleared.
type Collector struct {
	mu        sync.Mutex
	values    map[Field]string
	leadID    string
	submitter Submitter
	l         pkgLog.Logger
}

// NewCollector creates an empty collector.
func NewCollector(submitter Submitter, l pkgLog.Logger) *Collector {
	return &Collector{
		values:    make(map[Field]string, len(Fields)),
		submitter: submitter,
		l:         l,
	}
}

// Update merges a fragment and returns the fields it newly set.
func (c *Collector) Update(frag Fragment) []Field {
	c.mu.Lock()
	defer c.mu.Unlock()

	var added []Field
	for _, f := range Fields {
		v, ok := frag[f]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" || c.values[f] != "" {
			continue
		}
		c.values[f] = v
		added = append(added, f)
	}
	return added
}

// Missing returns the absent fields in canonical order.
func (c *Collector) Missing() []Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.missingLocked()
}

func (c *Collector) missingLocked() []Field {
	missing := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if c.values[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Ready reports whether every field is present.
func (c *Collector) Ready() bool {
	return len(c.Missing()) == 0
}

// LeadID returns the id assigned by the last successful submission.
func (c *Collector) LeadID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.leadID
}

// Snapshot returns a copy of the collector state.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make(map[Field]string, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	missing := c.missingLocked()
	return Snapshot{
		Values:  values,
		Missing: missing,
		Ready:   len(missing) == 0,
		LeadID:  c.leadID,
	}
}

// Submit posts the record downstream when ready. It returns the public id and
// true on success; false when not ready or on any failure. Failures are logged,
// never returned.
func (c *Collector) Submit(ctx context.Context) (string, bool) {
	c.mu.Lock()
	missing := c.missingLocked()
	rec := recordFrom(c.values)
	c.mu.Unlock()

	if len(missing) > 0 {
		c.l.Debugf(ctx, "internal.lead.Collector.Submit: %v: %s", ErrNotReady, JoinFields(missing))
		return "", false
	}
	if c.submitter == nil {
		c.l.Warnf(ctx, "internal.lead.Collector.Submit: no submitter configured")
		return "", false
	}

	id, err := c.submitter.Submit(ctx, rec)
	if err != nil {
		c.l.Warnf(ctx, "internal.lead.Collector.Submit: failed to submit lead: %v", err)
		return "", false
	}

	c.mu.Lock()
	c.leadID = id
	c.mu.Unlock()

	c.l.Infof(ctx, "internal.lead.Collector.Submit: lead created with id %s", id)
	return id, true
}
