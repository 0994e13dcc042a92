package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// KVRepository persists key/value entries in Postgres. Scalar values are
// stored as single JSON documents, list keys as JSON arrays.
type KVRepository struct {
	sb squirrel.StatementBuilderType
}

// NewKVRepository creates a new KVRepository.
func NewKVRepository(br squirrel.BaseRunner) KVRepository {
	return KVRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// Get returns the scalar value stored under key. List keys report not found;
// callers read those through ListRange.
func (r KVRepository) Get(ctx context.Context, key string) (any, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
	))
	defer span.End()

	var (
		kind      domain.KVValueKind
		valueJSON []byte
	)
	err := r.sb.
		Select("kind", "value").
		From("kv_entries").
		Where(squirrel.Eq{"key": key}).
		QueryRowContext(spanCtx).
		Scan(&kind, &valueJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	if kind == domain.KVValueKind_List {
		return nil, false, nil
	}

	var value any
	if err := json.Unmarshal(valueJSON, &value); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores a scalar or JSON value under key, replacing any previous value.
func (r KVRepository) Set(ctx context.Context, key string, value any) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
	))
	defer span.End()

	valueJSON, err := json.Marshal(value)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	kind := domain.KVValueKind_JSON
	if _, ok := value.(string); ok {
		kind = domain.KVValueKind_String
	}

	_, err = r.sb.
		Insert("kv_entries").
		Columns("key", "kind", "value", "updated_at").
		Values(key, kind, valueJSON, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET kind = EXCLUDED.kind, value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Delete removes key. It reports whether the key existed.
func (r KVRepository) Delete(ctx context.Context, key string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
	))
	defer span.End()

	res, err := r.sb.
		Delete("kv_entries").
		Where(squirrel.Eq{"key": key}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// ListAppend appends items to the list under key, creating it when absent,
// and returns the new length. A scalar value under key is replaced by the
// new list.
func (r KVRepository) ListAppend(ctx context.Context, key string, items ...any) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
		attribute.Int("kv.items", len(items)),
	))
	defer span.End()

	if len(items) == 0 {
		return r.ListLength(spanCtx, key)
	}

	itemsJSON, err := json.Marshal(items)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	var length int
	err = r.sb.
		Insert("kv_entries").
		Columns("key", "kind", "value", "updated_at").
		Values(key, domain.KVValueKind_List, itemsJSON, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET kind = EXCLUDED.kind, value = CASE WHEN kv_entries.kind = 'list' THEN kv_entries.value || EXCLUDED.value ELSE EXCLUDED.value END, updated_at = EXCLUDED.updated_at RETURNING jsonb_array_length(value)").
		QueryRowContext(spanCtx).
		Scan(&length)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return length, nil
}

// ListRange returns items of the list under key in [start, stop] inclusive.
// Negative indices count from the end, Redis style.
func (r KVRepository) ListRange(ctx context.Context, key string, start, stop int) ([]any, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
		attribute.Int("kv.start", start),
		attribute.Int("kv.stop", stop),
	))
	defer span.End()

	var valueJSON []byte
	err := r.sb.
		Select("value").
		From("kv_entries").
		Where(squirrel.Eq{"key": key, "kind": domain.KVValueKind_List}).
		QueryRowContext(spanCtx).
		Scan(&valueJSON)
	if err == sql.ErrNoRows {
		return []any{}, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var items []any
	if err := json.Unmarshal(valueJSON, &items); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return sliceListRange(items, start, stop), nil
}

// ListLength returns the length of the list under key, zero when absent.
func (r KVRepository) ListLength(ctx context.Context, key string) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.key", key),
	))
	defer span.End()

	var length int
	err := r.sb.
		Select("jsonb_array_length(value)").
		From("kv_entries").
		Where(squirrel.Eq{"key": key, "kind": domain.KVValueKind_List}).
		QueryRowContext(spanCtx).
		Scan(&length)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return length, nil
}

// Keys returns all keys matching the given glob pattern, sorted.
func (r KVRepository) Keys(ctx context.Context, pattern string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kv.pattern", pattern),
	))
	defer span.End()

	rows, err := r.sb.
		Select("key").
		From("kv_entries").
		Where(squirrel.Expr("key LIKE ?", globToLike(pattern))).
		OrderBy("key ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return keys, nil
}

// sliceListRange applies Redis-style inclusive range semantics to items.
func sliceListRange(items []any, start, stop int) []any {
	n := len(items)
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return []any{}
	}
	return items[start : stop+1]
}

// globToLike translates a Redis-style glob pattern into a SQL LIKE pattern.
func globToLike(pattern string) string {
	var b strings.Builder
	for _, c := range pattern {
		switch c {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%', '_', '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// InitKVRepository is a Symbiont initializer for KVRepository.
type InitKVRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the KVRepository in the dependency container.
func (i InitKVRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.KVRepository](NewKVRepository(i.DB))
	return ctx, nil
}
