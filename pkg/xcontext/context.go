package xcontext

import (
	"context"
	"net/http"

	"github.com/bigex/backend/config"
	"github.com/bigex/backend/pkg/authenticator"
	"github.com/bigex/backend/pkg/logger"
	"github.com/bigex/backend/pkg/ws"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type (
	configsKey       struct{}
	loggerKey        struct{}
	dbKey            struct{}
	dbTransactionKey struct{}
	tokenEngineKey   struct{}
	snowflakeKey     struct{}
	requestUserIDKey struct{}
	httpRequestKey   struct{}
	httpWriterKey    struct{}
	wsClientKey      struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the transaction if one was opened with WithDBTransaction,
// otherwise the root database handle.
func DB(ctx context.Context) *gorm.DB {
	if tx := dbTransaction(ctx); tx != nil {
		return tx
	}

	return ctx.Value(dbKey{}).(*gorm.DB)
}

func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionKey{}, DB(ctx).Begin())
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if tx := dbTransaction(ctx); tx != nil {
		tx.Commit()
	}

	return context.WithValue(ctx, dbTransactionKey{}, nil)
}

func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if tx := dbTransaction(ctx); tx != nil {
		tx.Rollback()
	}

	return context.WithValue(ctx, dbTransactionKey{}, nil)
}

func dbTransaction(ctx context.Context) *gorm.DB {
	if value := ctx.Value(dbTransactionKey{}); value != nil {
		if tx, ok := value.(*gorm.DB); ok {
			return tx
		}
	}

	return nil
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
}

func WithSnowFlake(ctx context.Context, node *snowflake.Node) context.Context {
	return context.WithValue(ctx, snowflakeKey{}, node)
}

func SnowFlake(ctx context.Context) *snowflake.Node {
	return ctx.Value(snowflakeKey{}).(*snowflake.Node)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

// RequestUserID returns the authenticated user id or an empty string for
// unauthenticated requests.
func RequestUserID(ctx context.Context) string {
	if id := ctx.Value(requestUserIDKey{}); id != nil {
		return id.(string)
	}

	return ""
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey{}).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey{}).(http.ResponseWriter)
}

func WithWSClient(ctx context.Context, client *ws.Client) context.Context {
	return context.WithValue(ctx, wsClientKey{}, client)
}

func WSClient(ctx context.Context) *ws.Client {
	return ctx.Value(wsClientKey{}).(*ws.Client)
}
