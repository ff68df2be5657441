package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/service"
)

// ContactsHandler manages the public contact form and its admin follow-up.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contacts *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// Create POST /api/contacts. Publicly reachable.
func (h *ContactsHandler) Create(c *fiber.Ctx) error {
	req, err := validate.BodyOf[dto.CreateContactRequest](c)
	if err != nil {
		return err
	}

	contact, err := h.contacts.Create(c.UserContext(), service.ContactCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contactResponse(contact)})
}

// List GET /api/contacts.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	query, err := validate.QueryOf[dto.ContactListQuery](c)
	if err != nil {
		return err
	}

	var status *domain.ContactStatus
	if query.Status != "" {
		s := domain.ContactStatus(query.Status)
		status = &s
	}

	contacts, err := h.contacts.List(c.UserContext(), status, query.Limit, query.Offset)
	if err != nil {
		return err
	}
	out := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, contactResponse(&contacts[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/contacts/:id.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	contact, err := h.contacts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactResponse(contact)})
}

// MarkHandled POST /api/contacts/:id/handle.
func (h *ContactsHandler) MarkHandled(c *fiber.Ctx) error {
	contact, err := h.contacts.MarkHandled(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactResponse(contact)})
}

// Delete DELETE /api/contacts/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func contactResponse(contact *domain.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		Status:    string(contact.Status),
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}
