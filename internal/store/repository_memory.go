package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// MemoryRepository keeps the contract aggregate in process memory. It
// implements [ContractRepository], [DocumentRepository] and
// [PartyRepository] with the same find-or-create rules as the SQL backends
// and is meant for local runs and tests.
type MemoryRepository struct {
	mu sync.RWMutex

	ids utils.IDGenerator
	now func() time.Time

	owners     map[string]models.Owner
	tenants    map[string]models.Tenant
	properties map[string]models.Property
	contracts  map[string]models.Contract
	details    map[string]models.ContractDetails
	documents  map[string]models.ContractDocument
}

// NewMemoryRepository returns an empty in-process store. It implements
// [ContractRepository], [PartyRepository] and [DocumentRepository] and is
// used for STORAGE_BACKEND=memory and in tests.
func NewMemoryRepository(ids utils.IDGenerator) *MemoryRepository {
	return &MemoryRepository{
		ids:        ids,
		now:        func() time.Time { return time.Now().UTC() },
		owners:     make(map[string]models.Owner),
		tenants:    make(map[string]models.Tenant),
		properties: make(map[string]models.Property),
		contracts:  make(map[string]models.Contract),
		details:    make(map[string]models.ContractDetails),
		documents:  make(map[string]models.ContractDocument),
	}
}

func (m *MemoryRepository) FindActiveContractByAddress(ctx context.Context, userID, normalizedAddress string) (*models.ActiveContractSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *models.Contract
	for _, c := range m.contracts {
		if c.UserID != userID || c.Status != models.ContractStatusActive {
			continue
		}
		if m.properties[c.PropertyID].NormalizedAddress != normalizedAddress {
			continue
		}
		if found == nil || c.CreatedAt.After(found.CreatedAt) {
			found = &c
		}
	}
	if found == nil {
		return nil, nil
	}

	return &models.ActiveContractSummary{
		ContractID: found.ID,
		TenantName: m.tenants[found.TenantID].Name,
		StartDate:  found.StartDate,
		EndDate:    found.EndDate,
		RentAmount: found.RentAmount,
		Currency:   found.Currency,
	}, nil
}

// CreateContractWithEntities holds the write lock for the whole operation,
// which gives it the all-or-nothing behavior of the SQL transaction.
func (m *MemoryRepository) CreateContractWithEntities(ctx context.Context, req models.CreateContractRequest) (models.ContractCreationResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ContractCreationResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var result models.ContractCreationResult

	// nothing is written until every entity is resolved
	owner, ok := m.ownerByTCHash(req.UserID, req.Owner.TCHash)
	if !ok {
		owner = models.Owner{
			ID:            m.ids.Generate(),
			UserID:        req.UserID,
			Name:          req.Owner.Name,
			TCEncrypted:   req.Owner.TCEncrypted,
			TCHash:        req.Owner.TCHash,
			IBANEncrypted: req.Owner.IBANEncrypted,
			Phone:         req.Owner.Phone,
			Email:         req.Owner.Email,
			CreatedAt:     now,
		}
		result.CreatedOwner = true
	}

	tenant, ok := m.tenantByTCHash(req.UserID, req.Tenant.TCHash)
	if !ok {
		tenant = models.Tenant{
			ID:          m.ids.Generate(),
			UserID:      req.UserID,
			Name:        req.Tenant.Name,
			TCEncrypted: req.Tenant.TCEncrypted,
			TCHash:      req.Tenant.TCHash,
			Phone:       req.Tenant.Phone,
			Email:       req.Tenant.Email,
			Address:     req.Tenant.Address,
			CreatedAt:   now,
		}
		result.CreatedTenant = true
	}

	property, ok := m.propertyByAddress(req.UserID, req.Property.NormalizedAddress)
	if !ok {
		property = models.Property{
			ID:                m.ids.Generate(),
			UserID:            req.UserID,
			OwnerID:           owner.ID,
			AddressComponents: req.Property.AddressComponents,
			FullAddress:       req.Property.FullAddress,
			NormalizedAddress: req.Property.NormalizedAddress,
			Type:              req.Property.Type,
			UsePurpose:        req.Property.UsePurpose,
			CreatedAt:         now,
		}
		result.CreatedProperty = true
	}

	contract := models.Contract{
		ID:         m.ids.Generate(),
		UserID:     req.UserID,
		OwnerID:    owner.ID,
		TenantID:   tenant.ID,
		PropertyID: property.ID,
		StartDate:  req.Contract.StartDate,
		EndDate:    req.Contract.EndDate,
		RentAmount: req.Contract.RentAmount,
		Deposit:    req.Contract.Deposit,
		Currency:   req.Contract.Currency,
		Status:     models.ContractStatusActive,
		CreatedAt:  now,
	}
	if contract.Currency == "" {
		contract.Currency = models.DefaultCurrency
	}

	m.owners[owner.ID] = owner
	m.tenants[tenant.ID] = tenant
	m.properties[property.ID] = property
	m.contracts[contract.ID] = contract
	if req.Details != nil {
		details := *req.Details
		details.ContractID = contract.ID
		m.details[contract.ID] = details
	}

	result.Success = true
	result.ContractID = contract.ID
	result.OwnerID, result.OwnerName = owner.ID, owner.Name
	result.TenantID, result.TenantName = tenant.ID, tenant.Name
	result.PropertyID, result.PropertyAddress = property.ID, property.FullAddress

	return result, nil
}

func (m *MemoryRepository) GetContract(ctx context.Context, userID, contractID string) (models.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.contracts[contractID]
	if !ok || c.UserID != userID {
		return models.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// ContractDetails returns the stored details of a contract.
func (m *MemoryRepository) ContractDetails(contractID string) (models.ContractDetails, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.details[contractID]
	return d, ok
}

func (m *MemoryRepository) SaveDocument(ctx context.Context, doc models.ContractDocument) (models.ContractDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.contracts[doc.ContractID]; !ok || c.UserID != doc.UserID {
		return models.ContractDocument{}, ErrContractNotFound
	}
	if doc.ID == "" {
		doc.ID = m.ids.Generate()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = m.now()
	}
	m.documents[doc.ID] = doc

	return doc, nil
}

func (m *MemoryRepository) GetDocument(ctx context.Context, userID, documentID string) (models.ContractDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[documentID]
	if !ok || doc.UserID != userID {
		return models.ContractDocument{}, ErrDocumentNotFound
	}
	return doc, nil
}

func (m *MemoryRepository) DeleteDocument(ctx context.Context, userID, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.documents[documentID]
	if !ok || doc.UserID != userID {
		return ErrDocumentNotFound
	}
	delete(m.documents, documentID)
	return nil
}

func (m *MemoryRepository) GetOwner(ctx context.Context, userID, ownerID string) (models.Owner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.owners[ownerID]
	if !ok || o.UserID != userID {
		return models.Owner{}, ErrOwnerNotFound
	}
	return o, nil
}

func (m *MemoryRepository) GetTenant(ctx context.Context, userID, tenantID string) (models.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok || t.UserID != userID {
		return models.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (m *MemoryRepository) ownerByTCHash(userID, tcHash string) (models.Owner, bool) {
	for _, o := range m.owners {
		if o.UserID == userID && o.TCHash == tcHash {
			return o, true
		}
	}
	return models.Owner{}, false
}

func (m *MemoryRepository) tenantByTCHash(userID, tcHash string) (models.Tenant, bool) {
	for _, t := range m.tenants {
		if t.UserID == userID && t.TCHash == tcHash {
			return t, true
		}
	}
	return models.Tenant{}, false
}

func (m *MemoryRepository) propertyByAddress(userID, normalized string) (models.Property, bool) {
	for _, p := range m.properties {
		if p.UserID == userID && p.NormalizedAddress == normalized {
			return p, true
		}
	}
	return models.Property{}, false
}
