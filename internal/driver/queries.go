package driver

const (
	SaveJobNodeQuery = `
		MERGE (j:Job {id: $id, run_id: $run_id})
		SET j.title = $title,
			j.company = $company,
			j.location = $location
		RETURN j.id AS id
	`

	SaveSkillNodeQuery = `
		MERGE (s:Skill {name: $name, run_id: $run_id})
		SET s.category = $category,
			s.frequency = $frequency
		RETURN s.name AS name
	`

	SaveMentionEdgeQuery = `
		MATCH (j:Job {id: $job_id, run_id: $run_id})
		MATCH (s:Skill {name: $skill, run_id: $run_id})
		MERGE (j)-[e:MENTIONS]->(s)
		RETURN s.name AS name
	`

	SaveCooccurrenceEdgeQuery = `
		MATCH (a:Skill {name: $source, run_id: $run_id})
		MATCH (b:Skill {name: $target, run_id: $run_id})
		MERGE (a)-[e:CO_OCCURS]->(b)
		SET e.weight = $weight
		RETURN e.weight AS weight
	`

	ClearRunQuery = `
		MATCH (n {run_id: $run_id})
		DETACH DELETE n
	`

	GetSkillNodesQuery = `
		MATCH (s:Skill {run_id: $run_id})
		RETURN s.name AS name, s.category AS category, s.frequency AS frequency
		ORDER BY s.name
	`

	GetCooccurrenceEdgesQuery = `
		MATCH (a:Skill {run_id: $run_id})-[e:CO_OCCURS]->(b:Skill {run_id: $run_id})
		RETURN a.name AS source, b.name AS target, e.weight AS weight
		ORDER BY a.name, b.name
	`
)
