// Package console runs an interactive SQL session against the star
// schema. Each statement either returns rows, completes as a command or
// fails; a failure is reported and the session carries on.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"stay_loader/db"
)

const (
	prompt         = "stay=> "
	continuePrompt = "stay-> "
	nullText       = "NULL"
)

// Kind classifies the result of a statement.
type Kind int

const (
	// Rows is a statement that produced a result set, possibly empty.
	Rows Kind = iota
	// Command is a statement with no result set (DDL or DML).
	Command
	// Failure is a statement the store rejected.
	Failure
)

func (k Kind) String() string {
	switch k {
	case Rows:
		return "rows"
	case Command:
		return "command"
	default:
		return "failure"
	}
}

// Result is the outcome of executing one statement.
type Result struct {
	Kind    Kind
	Columns []string
	Rows    [][]string
	Tag     string
	Err     error
}

// Outcome tells the read loop whether to keep going.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Session is a single-user SQL session bound to one pooled connection.
type Session struct {
	conn *pgxpool.Conn
	out  io.Writer
	log  zerolog.Logger
}

// NewSession acquires a connection from pool for the lifetime of the
// session. Output is written to out.
func NewSession(ctx context.Context, pool *pgxpool.Pool, out io.Writer, log zerolog.Logger) (*Session, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &Session{conn: conn, out: out, log: log}, nil
}

// Close returns the connection to the pool.
func (s *Session) Close() {
	s.conn.Release()
}

// Execute runs sql as given. Values come back in their text form.
func (s *Session) Execute(ctx context.Context, sql string) Result {
	rows, err := s.conn.Query(ctx, sql, pgx.QueryExecModeSimpleProtocol)
	if err != nil {
		return failure(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var data [][]string
	for rows.Next() {
		raw := rows.RawValues()
		row := make([]string, len(raw))
		for i, v := range raw {
			if v == nil {
				row[i] = nullText
				continue
			}
			row[i] = string(v)
		}
		data = append(data, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return failure(err)
	}

	if len(fields) == 0 {
		return Result{Kind: Command, Tag: rows.CommandTag().String()}
	}
	return Result{Kind: Rows, Columns: columns, Rows: data, Tag: rows.CommandTag().String()}
}

func failure(err error) Result {
	return Result{Kind: Failure, Err: db.ClassifyError(err)}
}

// Step reads one statement from in, executes it and reports it. Statements
// end with a semicolon or a blank line. Quit is returned for \q, quit,
// exit and end of input.
func (s *Session) Step(ctx context.Context, in *bufio.Reader) (Outcome, error) {
	var buf strings.Builder
	fmt.Fprint(s.out, prompt)

	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Quit, fmt.Errorf("read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		trimmed := strings.TrimSpace(line)

		if buf.Len() == 0 {
			if isQuit(trimmed) {
				return Quit, nil
			}
			if trimmed == "" {
				if eof {
					return Quit, nil
				}
				// Nothing entered: prompt again.
				return Continue, nil
			}
		}

		if trimmed != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(trimmed)
		}

		if trimmed == "" || strings.HasSuffix(trimmed, ";") || eof {
			s.report(s.Execute(ctx, buf.String()))
			if eof {
				return Quit, nil
			}
			return Continue, nil
		}
		fmt.Fprint(s.out, continuePrompt)
	}
}

// Run steps until Quit or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		outcome, err := s.Step(ctx, r)
		if err != nil {
			return err
		}
		if outcome == Quit {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSuffix(line, ";")) {
	case `\q`, "quit", "exit":
		return true
	}
	return false
}

func (s *Session) report(res Result) {
	switch res.Kind {
	case Failure:
		s.log.Debug().Err(res.Err).Msg("statement failed")
		fmt.Fprintf(s.out, "ERROR: %v\n", res.Err)
		fmt.Fprintln(s.out, "hint: check the statement syntax and table names, then try again")
	case Command:
		fmt.Fprintln(s.out, res.Tag)
	default:
		res.Render(s.out)
	}
}

// Render writes a result set as an aligned table with a row count footer.
func (r Result) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(r.Columns, "\t"))

	dashes := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		dashes[i] = strings.Repeat("-", max(len(c), 3))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range r.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	if len(r.Rows) == 1 {
		fmt.Fprintln(w, "(1 row)")
	} else {
		fmt.Fprintf(w, "(%d rows)\n", len(r.Rows))
	}
}
