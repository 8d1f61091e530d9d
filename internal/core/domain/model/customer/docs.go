// Package customer provides the Customer entity held by the customer directory.
//
// A customer is identified internally by a UUID and externally by the customer
// code typed next to a pasted order. The directory answers with the customer's
// tax id (CPF), which accompanies the imported order.
package customer
