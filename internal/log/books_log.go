package log

import (
	"github.com/project/dbcentral/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateBook(l *zap.Logger, msg string, opID, title string, authorID int64, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("op_id", opID),
			zap.String("book_title", title),
			zap.Int64("author_id", authorID),
			zap.String("action", CreateBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.Int64("book_id", id[0]),
		zap.String("book_title", title),
		zap.Int64("author_id", authorID),
		zap.String("action", CreateBook))
}

func ErrorCreateBook(l *zap.Logger, err error, msg string, opID, title string, authorID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.String("book_title", title),
		zap.Int64("author_id", authorID),
		zap.Error(err),
		zap.String("action", CreateBook))
}

func InfoBookByID(l *zap.Logger, msg string, opID string, action Action, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.Int64("book_id", bookID),
		zap.String("action", action))
}

func ErrorBookByID(l *zap.Logger, err error, msg string, opID string, action Action, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoSearchBooks(l *zap.Logger, msg string, opID, query string, found ...int) {
	if len(found) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("op_id", opID),
			zap.String("query", query),
			zap.String("action", SearchBooks))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.String("query", query),
		zap.Int("found", found[0]),
		zap.String("action", SearchBooks))
}

func ErrorSearchBooks(l *zap.Logger, err error, msg string, opID, query string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.String("query", query),
		zap.Error(err),
		zap.String("action", SearchBooks))
}

func InfoListBooks(l *zap.Logger, msg string, opID string, action Action) {
	logger.MakeInfo(l, msg,
		zap.String("op_id", opID),
		zap.String("action", action))
}

func ErrorListBooks(l *zap.Logger, err error, msg string, opID string, action Action) bool {
	return logger.CheckError(err, l, msg,
		zap.String("op_id", opID),
		zap.Error(err),
		zap.String("action", action))
}
