package redis

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/aretw0/grove/pkg/behavior"
	backend "github.com/redis/go-redis/v9"
)

// Roster implements ports.Roster[string, W] using Redis. Assignments
// live in a hash (subject field → tree id), skip flags in a set, so
// membership survives process restarts and can be managed by other
// processes. Tree execution state stays in process: a restarted host
// re-creates its trees and they start fresh.
//
// Redis hashes have no order of their own; Active sorts subjects
// lexicographically to keep passes deterministic.
type Roster[W any] struct {
	client *backend.Client
	prefix string
}

type config struct {
	prefix string
}

// Option configures a Roster.
type Option func(*config)

// WithPrefix sets the key prefix for roster data.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// New creates a Redis roster with its own client.
func New[W any](address, password string, db int, opts ...Option) *Roster[W] {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient[W](client, opts...)
}

// NewFromClient creates a Redis roster from an existing client.
func NewFromClient[W any](client *backend.Client, opts ...Option) *Roster[W] {
	cfg := config{prefix: "grove:roster:"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Roster[W]{
		client: client,
		prefix: cfg.prefix,
	}
}

func (r *Roster[W]) assignKey() string {
	return r.prefix + "assign"
}

func (r *Roster[W]) skipKey() string {
	return r.prefix + "skip"
}

// Active returns the enrolled, unskipped subjects sorted
// lexicographically, with their tree handles.
func (r *Roster[W]) Active(ctx context.Context, w W) ([]behavior.Assignment[string], error) {
	assigned, err := r.client.HGetAll(ctx, r.assignKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}
	skipped, err := r.client.SMembers(ctx, r.skipKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read skip set: %w", err)
	}

	skip := make(map[string]struct{}, len(skipped))
	for _, subject := range skipped {
		skip[subject] = struct{}{}
	}

	subjects := make([]string, 0, len(assigned))
	for subject := range assigned {
		if _, ok := skip[subject]; ok {
			continue
		}
		subjects = append(subjects, subject)
	}
	slices.Sort(subjects)

	out := make([]behavior.Assignment[string], 0, len(subjects))
	for _, subject := range subjects {
		id, err := strconv.Atoi(assigned[subject])
		if err != nil {
			return nil, fmt.Errorf("corrupt tree id %q for subject %q: %w", assigned[subject], subject, err)
		}
		out = append(out, behavior.Assignment[string]{Subject: subject, Tree: behavior.TreeID(id)})
	}
	return out, nil
}

// Assign enrolls subject on tree and clears any skip flag.
func (r *Roster[W]) Assign(ctx context.Context, subject string, tree behavior.TreeID) error {
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, r.assignKey(), subject, strconv.Itoa(int(tree)))
	pipe.SRem(ctx, r.skipKey(), subject)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to assign %q: %w", subject, err)
	}
	return nil
}

// Skip flags subject so Active omits it until Unskip or Assign.
func (r *Roster[W]) Skip(ctx context.Context, subject string) error {
	known, err := r.client.HExists(ctx, r.assignKey(), subject).Result()
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", subject, err)
	}
	if !known {
		return fmt.Errorf("skip %q: %w", subject, behavior.ErrUnknownSubject)
	}
	if err := r.client.SAdd(ctx, r.skipKey(), subject).Err(); err != nil {
		return fmt.Errorf("failed to skip %q: %w", subject, err)
	}
	return nil
}

// Unskip clears the skip flag.
func (r *Roster[W]) Unskip(ctx context.Context, subject string) error {
	known, err := r.client.HExists(ctx, r.assignKey(), subject).Result()
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", subject, err)
	}
	if !known {
		return fmt.Errorf("unskip %q: %w", subject, behavior.ErrUnknownSubject)
	}
	if err := r.client.SRem(ctx, r.skipKey(), subject).Err(); err != nil {
		return fmt.Errorf("failed to unskip %q: %w", subject, err)
	}
	return nil
}

// Remove deletes subject from the roster. Removing an unknown subject
// is a no-op.
func (r *Roster[W]) Remove(ctx context.Context, subject string) error {
	pipe := r.client.Pipeline()
	pipe.HDel(ctx, r.assignKey(), subject)
	pipe.SRem(ctx, r.skipKey(), subject)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove %q: %w", subject, err)
	}
	return nil
}

// Close closes the underlying client. Only call it for rosters built
// with New; NewFromClient leaves client ownership with the caller.
func (r *Roster[W]) Close() error {
	return r.client.Close()
}
