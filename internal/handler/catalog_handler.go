package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	"github.com/GoArmGo/StarWarsAPI/internal/serializer"
	"github.com/GoArmGo/StarWarsAPI/internal/usecase"
	"github.com/go-playground/validator/v10"
)

// CatalogHandler обрабатывает HTTP-запросы для пользователей, персонажей, планет и транспорта.
type CatalogHandler struct {
	catalog  usecase.CatalogUseCase
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogHandler создаёт новый экземпляр CatalogHandler.
func NewCatalogHandler(uc usecase.CatalogUseCase, logger *slog.Logger) *CatalogHandler {
	v := validator.New()
	// в сообщениях об ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CatalogHandler{catalog: uc, validate: v, logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCharacterRequest struct {
	Name      string `json:"name" validate:"required"`
	Height    *int   `json:"height" validate:"required"`
	Mass      *int   `json:"mass" validate:"required"`
	HairColor string `json:"hair_color" validate:"required"`
	SkinColor string `json:"skin_color" validate:"required"`
	EyeColor  string `json:"eye_color" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
}

type createPlanetRequest struct {
	Name           string `json:"name" validate:"required"`
	Climate        string `json:"climate" validate:"required"`
	Diameter       *int   `json:"diameter" validate:"required"`
	Gravity        *int   `json:"gravity" validate:"required"`
	OrbitalPeriod  *int   `json:"orbital_period" validate:"required"`
	Population     *int64 `json:"population" validate:"required"`
	RotationPeriod *int   `json:"rotation_period" validate:"required"`
	SurfaceWater   *int   `json:"surface_water" validate:"required"`
	Terrain        string `json:"terrain" validate:"required"`
}

type createVehicleRequest struct {
	Name          string `json:"name" validate:"required"`
	Model         string `json:"model" validate:"required"`
	CargoCapacity *int64 `json:"cargo_capacity" validate:"required"`
	Consumables   string `json:"consumables" validate:"required"`
	CostInCredits *int64 `json:"cost_in_credits" validate:"required"`
	VehicleClass  string `json:"vehicle_class" validate:"required"`
	Manufacturer  string `json:"manufacturer" validate:"required"`
	Passengers    *int   `json:"passengers" validate:"required"`
}

func (req *createUserRequest) toDomain() *domain.User {
	return &domain.User{Name: req.Name, Email: req.Email, Password: req.Password}
}

func (req *createCharacterRequest) toDomain() *domain.Character {
	return &domain.Character{
		Name:      req.Name,
		Height:    *req.Height,
		Mass:      *req.Mass,
		HairColor: req.HairColor,
		SkinColor: req.SkinColor,
		EyeColor:  req.EyeColor,
		Gender:    req.Gender,
	}
}

func (req *createPlanetRequest) toDomain() *domain.Planet {
	return &domain.Planet{
		Name:           req.Name,
		Climate:        req.Climate,
		Diameter:       *req.Diameter,
		Gravity:        *req.Gravity,
		OrbitalPeriod:  *req.OrbitalPeriod,
		Population:     *req.Population,
		RotationPeriod: *req.RotationPeriod,
		SurfaceWater:   *req.SurfaceWater,
		Terrain:        req.Terrain,
	}
}

func (req *createVehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Name:          req.Name,
		Model:         req.Model,
		CargoCapacity: *req.CargoCapacity,
		Consumables:   req.Consumables,
		CostInCredits: *req.CostInCredits,
		VehicleClass:  req.VehicleClass,
		Manufacturer:  req.Manufacturer,
		Passengers:    *req.Passengers,
	}
}

// validationError собирает сообщение о всех отсутствующих полях
func (h *CatalogHandler) validationError(req interface{}) *APIError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newAPIError(http.StatusBadRequest, err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" is required")
	}
	return newAPIError(http.StatusBadRequest, strings.Join(msgs, "; "))
}

// listEntities отдает все записи или 404, если таблица пуста
func listEntities[T, S any](
	h *CatalogHandler,
	w http.ResponseWriter,
	r *http.Request,
	plural string,
	list func(context.Context) ([]T, error),
	serialize func([]T) []S,
) {
	rows, err := list(r.Context())
	if err != nil {
		logFor(r, h.logger).Error("failed to list entities", "entity", plural, "error", err)
		respondWithInternalError(w, err, h.logger)
		return
	}
	if len(rows) == 0 {
		respondWithMsg(w, http.StatusNotFound, plural+" not found", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Msg: "ok", Results: serialize(rows)}, h.logger)
}

func getEntity[T, S any](
	h *CatalogHandler,
	w http.ResponseWriter,
	r *http.Request,
	singular string,
	get func(context.Context, uint) (*T, error),
	serialize func(T) S,
) {
	notFound := singular + " not found"

	id, ok := pathID(r, "id")
	if !ok {
		respondWithMsg(w, http.StatusNotFound, notFound, h.logger)
		return
	}

	row, err := get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondWithMsg(w, http.StatusNotFound, notFound, h.logger)
		return
	}
	if err != nil {
		logFor(r, h.logger).Error("failed to get entity", "entity", singular, "id", id, "error", err)
		respondWithInternalError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, itemResponse{Msg: "ok", Result: serialize(*row)}, h.logger)
}

// createEntity разбирает и проверяет тело, создает запись и отдает ее с кодом 201
func createEntity[R interface{ toDomain() *T }, T, S any](
	h *CatalogHandler,
	w http.ResponseWriter,
	r *http.Request,
	singular string,
	req R,
	create func(context.Context, *T) error,
	serialize func(T) S,
) {
	if apiErr := decodeJSON(r, req); apiErr != nil {
		respondWithAPIError(w, apiErr, h.logger)
		return
	}
	if apiErr := h.validationError(req); apiErr != nil {
		logFor(r, h.logger).Warn("invalid create request", "entity", singular, "error", apiErr.Message)
		respondWithAPIError(w, apiErr, h.logger)
		return
	}

	row := req.toDomain()
	if err := create(r.Context(), row); err != nil {
		logFor(r, h.logger).Error("failed to create entity", "entity", singular, "error", err)
		respondWithInternalError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, itemResponse{Msg: "ok", Result: serialize(*row)}, h.logger)
}

func (h *CatalogHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, "Users", h.catalog.ListUsers, serializer.Users)
}

func (h *CatalogHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, "User", h.catalog.GetUser, serializer.NewUser)
}

func (h *CatalogHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, "User", &createUserRequest{}, h.catalog.CreateUser, serializer.NewUser)
}

func (h *CatalogHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, "Characters", h.catalog.ListCharacters, serializer.Characters)
}

func (h *CatalogHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, "Character", h.catalog.GetCharacter, serializer.NewCharacter)
}

func (h *CatalogHandler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, "Character", &createCharacterRequest{}, h.catalog.CreateCharacter, serializer.NewCharacter)
}

func (h *CatalogHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, "Planets", h.catalog.ListPlanets, serializer.Planets)
}

func (h *CatalogHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, "Planet", h.catalog.GetPlanet, serializer.NewPlanet)
}

func (h *CatalogHandler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, "Planet", &createPlanetRequest{}, h.catalog.CreatePlanet, serializer.NewPlanet)
}

func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	listEntities(h, w, r, "Vehicles", h.catalog.ListVehicles, serializer.Vehicles)
}

func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	getEntity(h, w, r, "Vehicle", h.catalog.GetVehicle, serializer.NewVehicle)
}

func (h *CatalogHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	createEntity(h, w, r, "Vehicle", &createVehicleRequest{}, h.catalog.CreateVehicle, serializer.NewVehicle)
}
