package directory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout of a customer seed file.
type SeedFile struct {
	Customers []SeedCustomer `yaml:"customers"`
}

// SeedCustomer is one entry of a seed file.
type SeedCustomer struct {
	Code  string `yaml:"code"`
	TaxID string `yaml:"taxId"`
	Name  string `yaml:"name,omitempty"`
}

// LoadSeedFile reads customers from the YAML file at path.
func LoadSeedFile(path string) ([]*customer.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open customer seed file: %w", err)
	}
	defer f.Close()

	return DecodeSeed(f)
}

// DecodeSeed reads customers from YAML. Every entry is validated; all invalid
// entries are reported together.
func DecodeSeed(r io.Reader) ([]*customer.Customer, error) {
	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode customer seed: %w", err)
	}

	var (
		customers = make([]*customer.Customer, 0, len(file.Customers))
		errList   []error
	)
	for i, entry := range file.Customers {
		c, err := customer.NewCustomer(kernel.NewUUID(), entry.Code, entry.TaxID, entry.Name)
		if err != nil {
			errList = append(errList, fmt.Errorf("customer #%d: %w", i+1, err))
			continue
		}
		customers = append(customers, c)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return customers, nil
}

// DefaultCustomers returns the built-in demo customers.
func DefaultCustomers() []*customer.Customer {
	entries := []SeedCustomer{
		{Code: "1001", TaxID: "123.456.789-01", Name: "João Silva"},
		{Code: "1002", TaxID: "987.654.321-02", Name: "Maria Santos"},
		{Code: "1003", TaxID: "456.789.123-03", Name: "Pedro Oliveira"},
		{Code: "2001", TaxID: "321.654.987-04", Name: "Ana Costa"},
		{Code: "2002", TaxID: "789.123.456-05", Name: "Carlos Ferreira"},
	}

	customers := make([]*customer.Customer, 0, len(entries))
	for _, e := range entries {
		c, err := customer.NewCustomer(kernel.NewUUID(), e.Code, e.TaxID, e.Name)
		if err != nil {
			panic(err)
		}
		customers = append(customers, c)
	}
	return customers
}
