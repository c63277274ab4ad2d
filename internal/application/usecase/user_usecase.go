package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/instock-api/internal/application/audit"
	"github.com/jhoicas/instock-api/internal/application/auth"
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// UserUseCase administración de usuarios de la empresa (solo admin).
// El alta de usuarios vive en auth (registro); acá van lectura, edición y baja.
type UserUseCase struct {
	repo     repository.UserRepository
	auditRec *audit.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, auditRec *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, auditRec: auditRec}
}

// GetByID obtiene un usuario (nil si no existe o es de otra empresa).
func (uc *UserUseCase) GetByID(companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios de la empresa con paginación.
func (uc *UserUseCase) List(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre, teléfono, rol, estado y opcionalmente la password
// (re-hasheada con bcrypt). Email y empresa no son editables.
func (uc *UserUseCase) Update(companyID, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, nil
	}
	old := sanitizedUser(user)

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordUpdate(companyID, actorID, "user", user.ID, old, sanitizedUser(user))
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario de la empresa. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(companyID, actorID, id string) error {
	if id == actorID {
		return domain.ErrConflict
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.CompanyID != companyID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if uc.auditRec != nil {
		uc.auditRec.RecordDelete(companyID, actorID, "user", id, sanitizedUser(user))
	}
	return nil
}

// sanitizedUser copia el usuario sin el hash de password para auditoría.
func sanitizedUser(u *entity.User) entity.User {
	cp := *u
	cp.PasswordHash = ""
	return cp
}
