package employee

import (
	"context"

	"github.com/talentbase/hr-backend-go/internal/domain/auth"
)

type EmployeeService interface {
	Create(ctx context.Context, actor auth.Identity, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, actor auth.Identity, id string) (Employee, error)
	List(ctx context.Context, actor auth.Identity) ([]Employee, error)
	Update(ctx context.Context, actor auth.Identity, id string, patch UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, actor auth.Identity, id string) error
}
