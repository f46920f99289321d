package in_memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
)

// RoleStorage keeps assignments in memory. It mirrors the sqlite
// semantics (case-insensitive uniqueness, exact-match removal) and
// backs the usecase tests.
type RoleStorage struct {
	mu          sync.RWMutex
	assignments []model.Assignment
}

func NewRoleStorage() *RoleStorage {
	return &RoleStorage{}
}

func (s *RoleStorage) Add(_ context.Context, username, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.Username == username && strings.EqualFold(a.Role, role) {
			return nil
		}
	}
	s.assignments = append(s.assignments, model.Assignment{Username: username, Role: role})
	return nil
}

func (s *RoleStorage) Remove(_ context.Context, username, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.Username == username && a.Role == role {
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	return nil
}

func (s *RoleStorage) RemoveRole(_ context.Context, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.Role == role {
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	return nil
}

func (s *RoleStorage) ListRoles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var roles []string
	for _, a := range s.assignments {
		if _, ok := seen[a.Role]; ok {
			continue
		}
		seen[a.Role] = struct{}{}
		roles = append(roles, a.Role)
	}
	sort.Strings(roles)
	return roles, nil
}

func (s *RoleStorage) UsersWithRole(ctx context.Context, role string) ([]string, error) {
	return s.usersWithRole(role, false)
}

func (s *RoleStorage) UsersWithRoleFold(ctx context.Context, role string) ([]string, error) {
	return s.usersWithRole(role, true)
}

func (s *RoleStorage) usersWithRole(role string, fold bool) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var users []string
	for _, a := range s.assignments {
		if fold && !strings.EqualFold(a.Role, role) {
			continue
		}
		if !fold && a.Role != role {
			continue
		}
		if _, ok := seen[a.Username]; ok {
			continue
		}
		seen[a.Username] = struct{}{}
		users = append(users, a.Username)
	}
	sort.Strings(users)
	return users, nil
}

func (s *RoleStorage) RolesOfUser(_ context.Context, username string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roles []string
	for _, a := range s.assignments {
		if a.Username == username {
			roles = append(roles, a.Role)
		}
	}
	sort.Strings(roles)
	return roles, nil
}

func (s *RoleStorage) Report(ctx context.Context) ([]model.RoleGroup, error) {
	roles, err := s.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	var groups []model.RoleGroup
	for _, role := range roles {
		members, err := s.UsersWithRole(ctx, role)
		if err != nil {
			return nil, err
		}
		groups = append(groups, model.RoleGroup{Role: role, Members: members})
	}
	return groups, nil
}
