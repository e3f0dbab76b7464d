package driver

const (
	SaveNetworkQuery = `
		MERGE (n:Network {id: $id})
		SET n.name = $name,
			n.encoding = $encoding,
			n.payload = $payload,
			n.species_count = $species_count,
			n.reaction_count = $reaction_count,
			n.saved_at = $saved_at
		RETURN n.id AS id
	`

	ClearNetworkPortsQuery = `
		MATCH (p:Port {network_id: $id})
		DETACH DELETE p
	`

	SaveNetworkPortQuery = `
		MATCH (n:Network {id: $network_id})
		MERGE (p:Port {network_id: $network_id, id: $id})
		SET p.species = $species,
			p.direction = $direction
		MERGE (n)-[:EXPOSES]->(p)
		RETURN p.id AS id
	`

	SaveSubmodelEdgeQuery = `
		MATCH (parent:Network {id: $parent_id})
		MERGE (child:Network {id: $child_id})
		MERGE (parent)-[e:INSTANTIATES {instance: $instance}]->(child)
		RETURN e.instance AS instance
	`

	NetworkExistsQuery = `
		MATCH (n:Network {id: $id})
		WHERE n.payload IS NOT NULL
		RETURN count(n) AS count
	`

	LoadNetworkQuery = `
		MATCH (n:Network {id: $id})
		WHERE n.payload IS NOT NULL
		RETURN n.encoding AS encoding, n.payload AS payload
	`

	DeleteNetworkQuery = `
		MATCH (n:Network {id: $id})
		OPTIONAL MATCH (n)-[:EXPOSES]->(p:Port)
		DETACH DELETE n, p
	`
)
