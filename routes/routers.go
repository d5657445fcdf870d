package routes

import (
	"cleverloo/constants"
	"cleverloo/controllers"
	middlewares "cleverloo/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db, redisCli)
	restroomController := controllers.NewRestroomController(db, redisCli, cld)
	roomController := controllers.NewRoomController(db, redisCli)
	reviewController := controllers.NewReviewController(db, redisCli)
	searchController := controllers.NewSearchController(db, redisCli)

	anyAuth := middlewares.AuthMiddleware(db)
	userOnly := middlewares.AuthMiddleware(db, constants.RoleUser)
	restroomOnly := middlewares.AuthMiddleware(db, constants.RoleRestroom)

	router.GET("/", controllers.Root)
	router.GET("/health", controllers.Health)

	router.POST("/signup/user", authController.UserSignup)
	router.POST("/signin/user", authController.UserSignin)
	router.POST("/signup/restroom", authController.RestroomSignup)
	router.POST("/signin/restroom", authController.RestroomSignin)
	router.POST("/auth/google", authController.AuthGoogle)

	router.GET("/user/profile", userOnly, userController.GetProfile)
	router.GET("/user/profile/details", userOnly, userController.GetProfileDetails)
	router.PUT("/user/edit", userOnly, userController.UpdateProfile)
	router.PUT("/user/change-password", userOnly, userController.ChangePassword)
	router.DELETE("/user/delete", userOnly, userController.DeleteAccount)

	router.GET("/user/bookmarks", userOnly, userController.GetBookmarks)
	router.GET("/user/bookmarks/details", userOnly, userController.GetBookmarkDetails)
	router.POST("/user/bookmarks", userOnly, userController.ToggleBookmark)
	router.DELETE("/user/bookmarks/:restroomId", userOnly, userController.RemoveBookmark)
	router.DELETE("/user/bookmarks", userOnly, userController.ClearBookmarks)

	router.GET("/restroom/profile", restroomOnly, restroomController.GetProfile)
	router.PUT("/restroom/edit", restroomOnly, restroomController.UpdateProfile)
	router.PUT("/restroom/change-password", restroomOnly, restroomController.ChangePassword)
	router.DELETE("/restroom/delete", restroomOnly, restroomController.DeleteAccount)

	router.GET("/restrooms", searchController.GetAllRestrooms)
	router.GET("/restrooms/search", anyAuth, searchController.Search)
	router.GET("/restrooms/:id", searchController.GetRestroomByID)
	router.GET("/restrooms/:id/details", searchController.GetRestroomDetails)

	router.PUT("/restrooms/:id/settings", restroomOnly, restroomController.UpdateSettings)
	router.PUT("/restrooms/:id/description", restroomOnly, restroomController.UpdateDescription)
	router.GET("/restrooms/:id/description", restroomOnly, restroomController.GetDescription)
	router.POST("/restrooms/:id/pictures", restroomOnly, restroomController.AddPicture)
	router.GET("/restrooms/:id/pictures", restroomOnly, restroomController.GetPictures)
	router.DELETE("/restrooms/:id/pictures", restroomOnly, restroomController.DeletePicture)

	router.POST("/restrooms/:id/rooms", restroomOnly, roomController.CreateRoom)
	router.GET("/restrooms/:id/rooms", restroomOnly, roomController.GetRooms)
	router.PUT("/restrooms/:id/rooms/:roomId", restroomOnly, roomController.UpdateRoom)
	router.DELETE("/restrooms/:id/rooms/:roomId", restroomOnly, roomController.DeleteRoom)
	router.PUT("/restrooms/:id/rooms/:roomId/status", restroomOnly, roomController.UpdateRoomStatus)

	router.POST("/restrooms/:id/reviews", userOnly, reviewController.CreateReview)
	router.GET("/restrooms/:id/reviews", anyAuth, reviewController.GetReviews)
	router.GET("/restrooms/:id/user-review-status", userOnly, reviewController.GetUserReviewStatus)
	router.GET("/restrooms/:id/user-reviews", userOnly, reviewController.GetUserReviews)
	router.GET("/restrooms/:id/reviews/admin", restroomOnly, reviewController.GetAdminReviews)

	router.POST("/img/upload", restroomOnly, restroomController.UploadImage)
}
