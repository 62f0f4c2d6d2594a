package msgindex

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/lib/sqlite"
)

var log = logging.Logger("msgindex")

const DefaultDbFilename = "msgindex.db"

var ddls = []string{
	`CREATE TABLE IF NOT EXISTS messages (
		cid TEXT PRIMARY KEY ON CONFLICT REPLACE,
		sender TEXT NOT NULL,
		receiver TEXT NOT NULL,
		nonce INTEGER NOT NULL,
		method INTEGER NOT NULL,
		exit_code INTEGER NOT NULL,
		height INTEGER NOT NULL,
		timestamp INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS messages_sender ON messages (sender)`,
	`CREATE INDEX IF NOT EXISTS messages_receiver ON messages (receiver)`,
	`CREATE INDEX IF NOT EXISTS messages_height ON messages (height)`,
}

const (
	// prepared stmts
	dbqInsertMessage  = "INSERT INTO messages VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	dbqGetMessageInfo = "SELECT cid, sender, receiver, nonce, method, exit_code, height, timestamp FROM messages WHERE cid = ?"
	dbqListMessages   = "SELECT cid, sender, receiver, nonce, method, exit_code, height, timestamp FROM messages WHERE sender = ? OR receiver = ? ORDER BY height DESC LIMIT ?"
)

type msgIndex struct {
	closeLk sync.RWMutex
	closed  bool

	db *sql.DB

	insertMsgStmt *sql.Stmt
	selectMsgStmt *sql.Stmt
	listMsgsStmt  *sql.Stmt
}

var _ MsgIndex = (*msgIndex)(nil)

// NewMsgIndex opens (creating if needed) the sqlite message index under
// basePath.
func NewMsgIndex(ctx context.Context, basePath string) (MsgIndex, error) {
	dbPath := filepath.Join(basePath, DefaultDbFilename)
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, xerrors.Errorf("failed to setup message index db: %w", err)
	}

	if err := sqlite.InitDb(ctx, "message index", db, ddls, []sqlite.MigrationFunc{}); err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("failed to init message index db: %w", err)
	}

	msgIndex := &msgIndex{db: db}
	if err := msgIndex.prepareStatements(); err != nil {
		_ = msgIndex.Close()
		return nil, xerrors.Errorf("error preparing msgindex database statements: %w", err)
	}

	log.Infow("opened message index", "path", dbPath)
	return msgIndex, nil
}

func (x *msgIndex) prepareStatements() (err error) {
	x.insertMsgStmt, err = x.db.Prepare(dbqInsertMessage)
	if err != nil {
		return xerrors.Errorf("prepare insertMsgStmt: %w", err)
	}
	x.selectMsgStmt, err = x.db.Prepare(dbqGetMessageInfo)
	if err != nil {
		return xerrors.Errorf("prepare selectMsgStmt: %w", err)
	}
	x.listMsgsStmt, err = x.db.Prepare(dbqListMessages)
	if err != nil {
		return xerrors.Errorf("prepare listMsgsStmt: %w", err)
	}
	return nil
}

func (x *msgIndex) IndexMessage(ctx context.Context, info MsgInfo) error {
	x.closeLk.RLock()
	defer x.closeLk.RUnlock()
	if x.closed {
		return xerrors.New("msgindex closed")
	}

	_, err := x.insertMsgStmt.ExecContext(ctx,
		info.Message.String(),
		info.From.String(),
		info.To.String(),
		int64(info.Nonce),
		int64(info.Method),
		int64(info.ExitCode),
		int64(info.Height),
		int64(info.Timestamp),
	)
	if err != nil {
		return xerrors.Errorf("error indexing message %s: %w", info.Message, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMsgInfo(row rowScanner) (MsgInfo, error) {
	var (
		msgCid, from, to                string
		nonce, method, code, height, ts int64
	)
	if err := row.Scan(&msgCid, &from, &to, &nonce, &method, &code, &height, &ts); err != nil {
		return MsgInfo{}, err
	}

	var info MsgInfo
	var err error
	if info.Message, err = cid.Decode(msgCid); err != nil {
		return MsgInfo{}, xerrors.Errorf("error decoding message cid: %w", err)
	}
	if info.From, err = address.NewFromString(from); err != nil {
		return MsgInfo{}, xerrors.Errorf("error decoding sender: %w", err)
	}
	if info.To, err = address.NewFromString(to); err != nil {
		return MsgInfo{}, xerrors.Errorf("error decoding receiver: %w", err)
	}
	info.Nonce = uint64(nonce)
	info.Method = abi.MethodNum(method)
	info.ExitCode = exitcode.ExitCode(code)
	info.Height = abi.ChainEpoch(height)
	info.Timestamp = uint64(ts)
	return info, nil
}

func (x *msgIndex) GetMsgInfo(ctx context.Context, m cid.Cid) (MsgInfo, error) {
	x.closeLk.RLock()
	defer x.closeLk.RUnlock()
	if x.closed {
		return MsgInfo{}, xerrors.New("msgindex closed")
	}

	info, err := scanMsgInfo(x.selectMsgStmt.QueryRowContext(ctx, m.String()))
	if err == sql.ErrNoRows {
		return MsgInfo{}, ErrNotFound
	}
	if err != nil {
		return MsgInfo{}, xerrors.Errorf("error querying msgindex database: %w", err)
	}
	return info, nil
}

func (x *msgIndex) ListMessages(ctx context.Context, addr address.Address, limit int) ([]MsgInfo, error) {
	x.closeLk.RLock()
	defer x.closeLk.RUnlock()
	if x.closed {
		return nil, xerrors.New("msgindex closed")
	}

	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := x.listMsgsStmt.QueryContext(ctx, addr.String(), addr.String(), limit)
	if err != nil {
		return nil, xerrors.Errorf("error querying msgindex database: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []MsgInfo
	for rows.Next() {
		info, err := scanMsgInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (x *msgIndex) Close() error {
	x.closeLk.Lock()
	defer x.closeLk.Unlock()

	if x.closed {
		return nil
	}
	x.closed = true

	return x.db.Close()
}
