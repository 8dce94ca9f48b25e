// Package services implements the core application logic behind the
// driving ports: index building, chunk ranking, and retrieval-augmented
// tutoring. Services depend on driven ports for all infrastructure.
package services
