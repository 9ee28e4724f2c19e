package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	mongodao "github.com/connecthub/connecthub-go/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies
var DAOModule = fx.Module("dao",
	fx.Provide(provideProfileDAO),
	fx.Invoke(ensureIndexes),
)

func provideProfileDAO(mongoDB *MongoDatabase) dao.ProfileDAO {
	return mongodao.NewProfileDAO(mongoDB.DB)
}

// ensureIndexes creates the indexes the domain relies on, most importantly
// the unique email index behind duplicate-registration detection.
func ensureIndexes(profileDAO dao.ProfileDAO, logger *zap.Logger) error {
	if err := profileDAO.EnsureIndexes(context.Background()); err != nil {
		logger.Error("Failed to create profile indexes", zap.Error(err))
		return err
	}
	logger.Info("MongoDB indexes created successfully")
	return nil
}
