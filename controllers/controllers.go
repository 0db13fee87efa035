package controllers

import (
	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	lifecycle     *services.CustomerLifecycle
	logQuery      *services.LogQuery
	activities    services.ActivityAppender
	notifier      *services.Notifier
	addressLookup *services.AddressLookup
)

// Init wires the service layer onto the global DB handle. Called once from
// main after ConnectDB and InitLogger.
func Init() {
	activities = services.NewActivityRecorder(config.DB, config.Logger)
	accounts := services.NewUserAccountProvider(config.DB)
	lifecycle = services.NewCustomerLifecycle(
		services.NewGormCustomerStore(config.DB), accounts, activities, config.Logger)
	logQuery = services.NewLogQuery(services.NewGormServiceLogStore(config.DB))
	notifier = services.NewNotifier(config.Logger)
	addressLookup = services.NewAddressLookup(config.Logger)
}

// currentActor resolves the acting user from the JWT claims. Mutating calls
// thread the actor explicitly into the service layer; an unresolvable actor
// falls back to the system sentinel.
func currentActor(c *gin.Context) (uuid.UUID, string) {
	userID, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, ""
	}
	raw, ok := userID.(string)
	if !ok {
		return uuid.Nil, ""
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ""
	}

	var user models.User
	if err := config.DB.Select("name").First(&user, "id = ?", id).Error; err != nil {
		return id, ""
	}
	return id, user.Name
}
