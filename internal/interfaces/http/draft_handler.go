package http

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// ImagesField campo multipart con las imágenes del anuncio.
const ImagesField = "imagens"

// DraftHandler maneja el flujo de creación de anuncios en dos etapas.
type DraftHandler struct {
	uc    *listing.CreateListingUseCase
	store *session.Store
	log   *logger.Logger
	now   func() time.Time
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *listing.CreateListingUseCase, store *session.Store, log *logger.Logger) *DraftHandler {
	return &DraftHandler{uc: uc, store: store, log: log, now: time.Now}
}

// NewListingForm godoc
// @Summary      Etapa 1 de creación de anuncio
// @Description  Solo empresas de tipo Armazém; el resto es redirigido a /login.
// @Tags         listings
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /criar_anuncio [get]
func (h *DraftHandler) NewListingForm(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "criar_anuncio", Company: GetCompany(c)})
}

// SaveDraft godoc
// @Summary      Guardar borrador (etapa 2)
// @Description  Valida título, descripción, tipo y precio y guarda el borrador en la sesión, reemplazando el anterior.
// @Tags         listings
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "titulo, descricao, preco, tipo"
// @Success      200   {object}  dto.PageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /criar_anuncio_etapa2 [post]
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgRequired})
	}
	draft, err := h.uc.StartDraft(in, h.now())
	if err != nil {
		return writeError(c, h.log, err)
	}
	sess, err := getSession(c, h.store)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := saveDraft(sess, draft); err != nil {
		return writeError(c, h.log, err)
	}
	// Save devuelve la sesión al pool; no usarla después
	company := sessionCompany(sess)
	if err := sess.Save(); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PageResponse{
		Page:    "criar_anuncio_2",
		Company: company,
		Data: dto.DraftResponse{
			Title:       draft.Title,
			Description: draft.Description,
			Price:       draft.Price,
			Type:        draft.Type,
		},
	})
}

// Finalize godoc
// @Summary      Finalizar anuncio
// @Description  Combina el borrador con la localización, guarda hasta 3 imágenes y publica el anuncio.
// @Tags         listings
// @Accept       multipart/form-data
// @Param        pais      formData  string  false  "país"
// @Param        endereco  formData  string  false  "endereço"
// @Param        bairro    formData  string  false  "bairro"
// @Param        cidade    formData  string  false  "cidade"
// @Param        estado    formData  string  false  "estado"
// @Param        cep       formData  string  false  "CEP"
// @Param        cnpj      formData  string  false  "CNPJ"
// @Param        imagens   formData  file    false  "imágenes (se procesan las 3 primeras)"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /finalizar_anuncio [post]
func (h *DraftHandler) Finalize(c *fiber.Ctx) error {
	var loc dto.LocationRequest
	if err := c.BodyParser(&loc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgRequired})
	}
	sess, err := getSession(c, h.store)
	if err != nil {
		return writeError(c, h.log, err)
	}
	draft, err := loadDraft(sess)
	if err != nil {
		return writeError(c, h.log, err)
	}

	out, err := h.uc.Finalize(c.UserContext(), GetCompanyID(c), draft, loc, uploadedImages(c), h.now())
	if err != nil {
		if errors.Is(err, domain.ErrDraftExpired) {
			clearDraft(sess)
			if saveErr := sess.Save(); saveErr != nil {
				return writeError(c, h.log, saveErr)
			}
		}
		return writeError(c, h.log, err)
	}

	clearDraft(sess)
	if err := sess.Save(); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().
		Int64("listing_id", out.ID).
		Int64("company_id", out.CompanyID).
		Str("image", out.ImagePath).
		Msg("anuncio publicado")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// uploadedImages archivos del campo imagens en el orden recibido; vacío si no es multipart.
func uploadedImages(c *fiber.Ctx) []listing.ImageFile {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	headers := form.File[ImagesField]
	files := make([]listing.ImageFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, listing.ImageFile{
			Filename: fh.Filename,
			Open:     func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return files
}
