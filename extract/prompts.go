package extract

// ExtractionPrompt is the Pass-1 system prompt. Each chunk is analyzed in
// isolation and must yield a JSON list of module objects, or an empty list.
const ExtractionPrompt = `You are an AI assistant analyzing a piece of website documentation. Your task is to identify and extract any product features (modules) and their specific functionalities (submodules) from the provided text.
Structure your output as valid JSON. The JSON must be a list of objects.
Each object must have "module" (string), "description" (string), and "submodules" (an object).
Extract information ONLY from the provided text. If you find no modules, return an empty list [].`

// SynthesisPrompt is the Pass-2 system prompt. It receives the serialized
// Pass-1 results and must merge them into one clean, deduplicated list.
const SynthesisPrompt = `You are a data synthesis AI. You will be given a JSON list of "modules" extracted from a website's documentation. This list is messy, containing many duplicates, fragments, and overlapping information because it was generated from small chunks of the full text.
Your task is to process this entire JSON list and produce a single, clean, de-duplicated, and logically structured final JSON list of modules.
- Merge duplicate modules (e.g., "Account Settings" and "Settings, Account").
- Combine descriptions for the same module to be more comprehensive.
- Merge submodules for the same module and de-duplicate them.
- Remove any irrelevant or clearly non-module entries.
- Ensure the final output is a valid JSON list of objects, with "module", "description", and "submodules" keys.`
