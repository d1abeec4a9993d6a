package routes

import (
	"SWJTUCTF/controllers"
	"SWJTUCTF/middlewares"
	"SWJTUCTF/models"
	"SWJTUCTF/services"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps 路由依赖的存储和服务
type Deps struct {
	Contests   *stores.ContestStore
	Teams      *stores.TeamStore
	Challenges *stores.ChallengeStore
	Users      *stores.UserStore
	Containers *services.ContainerService
	Cache      *services.ContestCache
	JWTSecret  []byte
	TokenTTL   time.Duration
	Logger     *zap.Logger
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(d.Logger), middlewares.Recovery(d.Logger))

	contestCtl := &controllers.ContestController{Contests: d.Contests, Cache: d.Cache, Logger: d.Logger}
	teamCtl := &controllers.TeamController{Teams: d.Teams, Users: d.Users, Logger: d.Logger}
	adminTeamCtl := &controllers.AdminTeamController{Teams: d.Teams, Logger: d.Logger}
	challengeCtl := &controllers.ChallengeController{Challenges: d.Challenges, Logger: d.Logger}
	containerCtl := &controllers.ContainerController{Containers: d.Containers, Logger: d.Logger}
	userCtl := &controllers.UserController{Users: d.Users, Teams: d.Teams, JWTSecret: d.JWTSecret, TokenTTL: d.TokenTTL, Logger: d.Logger}

	auth := middlewares.JWTAuthMiddleware(d.JWTSecret)
	tryAuth := middlewares.JWTTryAuthMiddleware(d.JWTSecret)
	adminOnly := middlewares.RoleAuthMiddleware(models.RoleAdmin)

	r.GET("/healthz", func(c *gin.Context) {
		utils.Success(c, "ok", gin.H{
			"contests":   d.Contests.Len(),
			"teams":      d.Teams.Len(),
			"challenges": d.Challenges.Len(),
		})
	})

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", userCtl.Register)
			usersPublic.POST("/login", userCtl.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(auth)
		{
			usersAuth.GET("/me", userCtl.Me)
		}

		contestRoutes := apiV1.Group("/contests")
		{
			contestRoutes.GET("", contestCtl.ListContests)
			contestRoutes.GET("/:id", contestCtl.GetContestDetail)
		}

		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(auth)
		{
			teamRoutes.POST("", teamCtl.CreateTeam)
			teamRoutes.POST("/join", teamCtl.JoinTeam)
			teamRoutes.GET("/mine", teamCtl.MyTeams)
			teamRoutes.GET("/:id", teamCtl.GetTeam)
			teamRoutes.PUT("/:id", teamCtl.UpdateTeam)
			teamRoutes.POST("/:id/leave", teamCtl.LeaveTeam)
			teamRoutes.DELETE("/:id", teamCtl.DisbandTeam)
		}

		challengeRoutes := apiV1.Group("/challenges")
		{
			challengeRoutes.GET("", tryAuth, challengeCtl.ListChallenges)
			challengeRoutes.GET("/:id", tryAuth, challengeCtl.GetChallengeDetail)
			challengeRoutes.POST("/:id/container", auth, containerCtl.StartContainer)
			challengeRoutes.DELETE("/:id/container", auth, containerCtl.StopContainer)
		}

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth, adminOnly)
		{
			adminRoutes.GET("/contests", contestCtl.AdminListContests)
			adminRoutes.POST("/contests", contestCtl.AdminCreateContest)
			adminRoutes.PUT("/contests/:id", contestCtl.AdminUpdateContest)
			adminRoutes.DELETE("/contests/:id", contestCtl.AdminDeleteContest)
			adminRoutes.PUT("/contests/:id/description", contestCtl.AdminUpdateDescription)

			adminRoutes.GET("/teams", adminTeamCtl.AdminGetTeams)
			adminRoutes.PUT("/teams/:id", adminTeamCtl.AdminUpdateTeam)
			adminRoutes.DELETE("/teams/:id", adminTeamCtl.AdminDeleteTeam)

			adminRoutes.GET("/users", userCtl.AdminGetUsers)
		}
	}

	return r
}
