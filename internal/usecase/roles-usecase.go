package usecase

import (
	"context"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
)

type RoleStorage interface {
	Add(ctx context.Context, username, role string) error
	Remove(ctx context.Context, username, role string) error
	RemoveRole(ctx context.Context, role string) error
	ListRoles(ctx context.Context) ([]string, error)
	UsersWithRole(ctx context.Context, role string) ([]string, error)
	UsersWithRoleFold(ctx context.Context, role string) ([]string, error)
	RolesOfUser(ctx context.Context, username string) ([]string, error)
	Report(ctx context.Context) ([]model.RoleGroup, error)
}

type RolesUsecaseDeps struct {
	RoleStorage RoleStorage
}

type RolesUsecase struct {
	RolesUsecaseDeps
}

func NewRolesUsecase(deps RolesUsecaseDeps) *RolesUsecase {
	return &RolesUsecase{
		RolesUsecaseDeps: deps,
	}
}

func (r *RolesUsecase) Assign(ctx context.Context, username, role string) error {
	return r.RoleStorage.Add(ctx, username, role)
}

func (r *RolesUsecase) Remove(ctx context.Context, username, role string) error {
	return r.RoleStorage.Remove(ctx, username, role)
}

func (r *RolesUsecase) RemoveRole(ctx context.Context, role string) error {
	return r.RoleStorage.RemoveRole(ctx, role)
}

func (r *RolesUsecase) ListRoles(ctx context.Context) ([]string, error) {
	return r.RoleStorage.ListRoles(ctx)
}

func (r *RolesUsecase) Members(ctx context.Context, role string) ([]string, error) {
	return r.RoleStorage.UsersWithRole(ctx, role)
}

func (r *RolesUsecase) MembersFold(ctx context.Context, role string) ([]string, error) {
	return r.RoleStorage.UsersWithRoleFold(ctx, role)
}

func (r *RolesUsecase) RolesOfUser(ctx context.Context, username string) ([]string, error) {
	return r.RoleStorage.RolesOfUser(ctx, username)
}

func (r *RolesUsecase) Report(ctx context.Context) ([]model.RoleGroup, error) {
	return r.RoleStorage.Report(ctx)
}

// AssignToMany assigns one role to every @username token. Malformed
// tokens (a bare @) are collected instead of failing the batch; a
// storage error aborts immediately.
func (r *RolesUsecase) AssignToMany(ctx context.Context, tokens []string, role string) (assigned, malformed []string, err error) {
	for _, token := range tokens {
		username := model.NormalizeUsername(token)
		if username == "" {
			malformed = append(malformed, token)
			continue
		}
		if err = r.RoleStorage.Add(ctx, username, role); err != nil {
			return nil, nil, err
		}
		assigned = append(assigned, "@"+username)
	}
	return assigned, malformed, nil
}

// RemoveFromMany removes the exact role string from every @username
// token, mirroring AssignToMany.
func (r *RolesUsecase) RemoveFromMany(ctx context.Context, tokens []string, role string) (removed, malformed []string, err error) {
	for _, token := range tokens {
		username := model.NormalizeUsername(token)
		if username == "" {
			malformed = append(malformed, token)
			continue
		}
		if err = r.RoleStorage.Remove(ctx, username, role); err != nil {
			return nil, nil, err
		}
		removed = append(removed, "@"+username)
	}
	return removed, malformed, nil
}
