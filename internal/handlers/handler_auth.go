package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
	"github.com/BinaWorks/construction_erp_app/internal/platform/config"
	"github.com/BinaWorks/construction_erp_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService    portssvc.UserSvcFacade
	companyService portssvc.CompanySvcFacade
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cs portssvc.CompanySvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:    us,
		companyService: cs,
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Company, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/bootstrap", limitMiddleware, h.BootstrapCompany)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate JWT", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// BootstrapCompany godoc
// @Summary Create a company with its first admin
// @Description Creates a new company tenant together with its first ADMIN user. Public, rate limited.
// @Tags auth
// @Accept json
// @Produce json
// @Param bootstrap body dto.BootstrapCompanyRequest true "Company and admin details"
// @Success 201 {object} dto.BootstrapCompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/bootstrap [post]
func (h *AuthHandler) BootstrapCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BootstrapCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req.CompanyName, req.Description, "")
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}

	admin, err := h.userService.RegisterUser(c.Request.Context(), company.CompanyID, dto.RegisterUserRequest{
		Name:     req.AdminName,
		Email:    req.AdminEmail,
		Password: req.AdminPassword,
		Role:     "ADMIN",
	}, "")
	if err != nil {
		respondError(c, err, "Failed to register admin user")
		return
	}

	logger.Info("Company bootstrapped",
		slog.String("company_id", company.CompanyID),
		slog.String("admin_id", admin.UserID))
	c.JSON(http.StatusCreated, dto.BootstrapCompanyResponse{
		Company: dto.ToCompanyResponse(company),
		Admin:   dto.ToUserResponse(admin),
	})
}
