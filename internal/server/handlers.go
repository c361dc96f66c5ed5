package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Package is a single sensor package sent by a client.
type Package struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type reportResponse struct {
	Info    *ftracker.InfoMessage `json:"info,omitempty"`
	Message string                `json:"message,omitempty"`
	Error   string                `json:"error,omitempty"`
}

type kindResponse struct {
	Code   string   `json:"code"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

func (s *Server) listKinds(c *gin.Context) {
	kinds := ftracker.Kinds()
	res := make([]kindResponse, 0, len(kinds))
	for _, k := range kinds {
		kr := kindResponse{Code: k.Code(), Label: k.String()}
		for _, f := range k.Fields() {
			kr.Fields = append(kr.Fields, f.Name)
		}
		res = append(res, kr)
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) showTraining(c *gin.Context) {
	var pkg Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, reportResponse{Error: err.Error()})
		return
	}

	res, err := s.report(pkg)
	if err != nil {
		c.JSON(statusFor(err), reportResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// showTrainings computes reports for a batch, failed items carry their error inline.
func (s *Server) showTrainings(c *gin.Context) {
	var pkgs []Package
	if err := c.ShouldBindJSON(&pkgs); err != nil {
		c.JSON(http.StatusBadRequest, reportResponse{Error: err.Error()})
		return
	}

	res := make([]reportResponse, len(pkgs))

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i, pkg := range pkgs {
		i, pkg := i, pkg
		g.Go(func() error {
			r, err := s.report(pkg)
			if err != nil {
				r = reportResponse{Error: err.Error()}
			}
			res[i] = r
			return nil
		})
	}
	_ = g.Wait()

	c.JSON(http.StatusOK, res)
}

func (s *Server) report(pkg Package) (reportResponse, error) {
	t, err := ftracker.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return reportResponse{}, err
	}

	info, err := ftracker.ShowTrainingInfo(t)
	if err != nil {
		return reportResponse{}, err
	}

	return reportResponse{
		Info:    &info,
		Message: info.Format(s.cfg.Precision),
	}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ftracker.ErrArithmeticDomain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ftracker.ErrUnknownWorkoutType),
		errors.Is(err, ftracker.ErrArityMismatch),
		errors.Is(err, ftracker.ErrInvalidField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
