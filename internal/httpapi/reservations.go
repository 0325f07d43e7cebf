package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/calendar"
	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/service"
)

type reservationAPI struct {
	reconciler *service.Reconciler
	promoter   *service.Promoter
	identity   *service.IdentityService
	catalog    *service.CatalogService
}

func registerReservationAPI(g *echo.Group, auth config.AuthConfig, api *reservationAPI) {
	optional := authMiddleware(auth, false)
	required := authMiddleware(auth, true)

	g.GET("/auth/check", api.authCheck, optional)
	g.POST("/auth/register", api.register, required)
	g.POST("/auth/verified", api.markVerified, required)
	g.GET("/classes", api.listClasses)
	g.GET("/reservations", api.listMonth)
	g.GET("/reservations/day", api.listDay)

	bookings := g.Group("/bookings", required)
	bookings.POST("", api.book)
	bookings.GET("", api.listBookings)
	bookings.POST("/:id/cancel", api.cancelBooking)
}

type (
	bookRequest struct {
		OccurrenceID string `json:"occurrence_id" validate:"required"`
		ScheduleID   string `json:"schedule_id" validate:"omitempty,uuid"`
		SessionDate  string `json:"session_date" validate:"omitempty,datetime=2006-01-02"`
	}

	bookResponse struct {
		BookingID     string `json:"booking_id"`
		PaymentID     string `json:"payment_id"`
		SessionID     string `json:"session_id"`
		PaymentNeeded bool   `json:"payment_needed"`
	}

	cancelRequest struct {
		Reason string `json:"reason" validate:"max=500"`
	}

	registerRequest struct {
		FirstName   string `json:"first_name" validate:"required,max=128"`
		LastName    string `json:"last_name" validate:"required,max=128"`
		Phone       string `json:"phone" validate:"omitempty,max=32"`
		Password    string `json:"password" validate:"omitempty,min=8,max=72"`
		DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
		Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	}
)

func (api *reservationAPI) authCheck(c echo.Context) error {
	st, err := api.identity.Check(c.Request().Context(), getContextPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// register provisions the student account for the signed-in principal.
func (api *reservationAPI) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reg := service.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
	}
	if req.DateOfBirth != "" {
		dob, err := calendar.ParseDate(req.DateOfBirth)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidArgument, "date_of_birth", err)
		}
		reg.DateOfBirth = &dob
	}
	if req.Gender != "" {
		g := model.Gender(req.Gender)
		reg.Gender = &g
	}

	st, err := api.identity.Register(c.Request().Context(), getContextPrincipal(c), reg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, st)
}

// markVerified is called once the identity provider has confirmed the principal's email.
func (api *reservationAPI) markVerified(c echo.Context) error {
	st, err := api.identity.MarkVerified(c.Request().Context(), getContextPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (api *reservationAPI) listClasses(c echo.Context) error {
	var page, size int
	if err := echo.QueryParamsBinder(c).Int("page", &page).Int("page_size", &size).BindError(); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "page and page_size must be integers", err)
	}
	res, err := api.catalog.ListSubClasses(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// listMonth takes a zero-indexed month, 0 is January.
func (api *reservationAPI) listMonth(c echo.Context) error {
	var year, month int
	err := echo.QueryParamsBinder(c).
		MustInt("year", &year).
		MustInt("month", &month).
		BindError()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "year and month are required integers", err)
	}

	occs, err := api.reconciler.SessionsForMonth(c.Request().Context(), year, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"year": year, "month": month, "sessions": occs})
}

func (api *reservationAPI) listDay(c echo.Context) error {
	var (
		date       string
		page, size int
	)
	err := echo.QueryParamsBinder(c).
		MustString("date", &date).
		Int("page", &page).
		Int("page_size", &size).
		BindError()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "date is required", err)
	}

	res, err := api.reconciler.SessionsForDay(c.Request().Context(), date, page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (api *reservationAPI) book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	studentID, err := api.identity.StudentID(ctx, getContextPrincipal(c))
	if err != nil {
		return err
	}

	res, err := api.promoter.Book(ctx, service.BookRequest{
		OccurrenceID: req.OccurrenceID,
		ScheduleID:   req.ScheduleID,
		SessionDate:  req.SessionDate,
		StudentID:    studentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bookResponse{
		BookingID:     res.BookingID.String(),
		PaymentID:     res.PaymentID.String(),
		SessionID:     res.SessionID.String(),
		PaymentNeeded: res.PaymentNeeded,
	})
}

func (api *reservationAPI) listBookings(c echo.Context) error {
	var page, size int
	if err := echo.QueryParamsBinder(c).Int("page", &page).Int("page_size", &size).BindError(); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "page and page_size must be integers", err)
	}

	ctx := c.Request().Context()
	studentID, err := api.identity.StudentID(ctx, getContextPrincipal(c))
	if err != nil {
		return err
	}
	res, err := api.promoter.ListBookings(ctx, studentID, page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (api *reservationAPI) cancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.InvalidArgument("booking id must be a uuid")
	}
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	studentID, err := api.identity.StudentID(ctx, getContextPrincipal(c))
	if err != nil {
		return err
	}
	if err := api.promoter.CancelBooking(ctx, bookingID, studentID, req.Reason); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"booking_id": bookingID.String(), "status": "CANCELLED"})
}
