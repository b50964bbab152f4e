package log

import (
	"github.com/project/dbcentral/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateAuthor(l *zap.Logger, msg string, opID, name, email string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("op_id", opID),
			zap.String("author_name", name),
			zap.String("author_email", email),
			zap.String("action", CreateAuthor))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.Int64("author_id", id[0]),
		zap.String("author_name", name),
		zap.String("author_email", email),
		zap.String("action", CreateAuthor))
}

func ErrorCreateAuthor(l *zap.Logger, err error, msg string, opID, name, email string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.String("author_name", name),
		zap.String("author_email", email),
		zap.Error(err),
		zap.String("action", CreateAuthor))
}

func InfoAuthorByID(l *zap.Logger, msg string, opID string, action Action, authorID int64) {
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.Int64("author_id", authorID),
		zap.String("action", action))
}

func ErrorAuthorByID(l *zap.Logger, err error, msg string, opID string, action Action, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoSearchAuthors(l *zap.Logger, msg string, opID, query string, found ...int) {
	if len(found) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("op_id", opID),
			zap.String("query", query),
			zap.String("action", SearchAuthors))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.String("query", query),
		zap.Int("found", found[0]),
		zap.String("action", SearchAuthors))
}

func ErrorSearchAuthors(l *zap.Logger, err error, msg string, opID, query string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.String("query", query),
		zap.Error(err),
		zap.String("action", SearchAuthors))
}

func InfoListAuthors(l *zap.Logger, msg string, opID string, action Action) {
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.String("action", action))
}

func ErrorListAuthors(l *zap.Logger, err error, msg string, opID string, action Action) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.Error(err),
		zap.String("action", action))
}
