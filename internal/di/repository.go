package di

import (
	"go.uber.org/fx"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(provideProfileRepository),
)

func provideProfileRepository(profileDAO dao.ProfileDAO) repository.ProfileRepository {
	return impl.NewProfileRepository(profileDAO)
}
