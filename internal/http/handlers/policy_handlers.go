package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/azimochilov/instagram-clone/domain"
)

// PolicyHandlers manages casbin policies over HTTP
type PolicyHandlers struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(enforcer domain.CasbinEnforcer) *PolicyHandlers {
	return &PolicyHandlers{enforcer: enforcer}
}

type policyReq struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

// List returns all stored policies
func (h *PolicyHandlers) List(c *gin.Context) {
	policies, err := h.enforcer.GetPolicy()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read policies")
		return
	}
	respond(c, http.StatusOK, "Policies fetched", policies)
}

// Add stores a new policy rule
func (h *PolicyHandlers) Add(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := h.enforcer.AddPolicy(r.Sub, r.Obj, r.Act)
	if err != nil || !ok {
		respondError(c, http.StatusBadRequest, "Policy not added")
		return
	}
	if err := h.enforcer.SavePolicy(); err != nil {
		logrus.WithError(err).Error("casbin: failed to persist policies")
	}
	respond(c, http.StatusOK, "Policy added", nil)
}

// Remove deletes a policy rule
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := h.enforcer.RemovePolicy(r.Sub, r.Obj, r.Act)
	if err != nil || !ok {
		respondError(c, http.StatusBadRequest, "Policy not removed")
		return
	}
	if err := h.enforcer.SavePolicy(); err != nil {
		logrus.WithError(err).Error("casbin: failed to persist policies")
	}
	respond(c, http.StatusOK, "Policy removed", nil)
}
