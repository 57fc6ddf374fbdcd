package help

const ColdstartYAML = `# scraper-summarizer Quick Start

engines:
  browser: "Headless Chrome with consent-suppression extension (default)"
  http: "Plain HTTP fetch for static pages, no browser required"

environment:
  NEBIUS_API_KEY: "Required. Read once at startup, also from .env"
  NEBIUS_BASE_URL: "Optional, defaults to the Nebius inference endpoint"
  NEBIUS_MODEL: "Optional, defaults to Mixtral-8x7B-Instruct fast"

commands:
  basic: |
    scraper-summarizer --url "https://example.com"

  save_to_file: |
    scraper-summarizer --url "https://example.com" --output summary.txt

  static_page: |
    scraper-summarizer --url "https://example.com" --engine http

  show_language: |
    scraper-summarizer --url "https://example.com" --detect-language

  force_language: |
    scraper-summarizer --url "https://example.com" --language German

  bypass_cache: |
    scraper-summarizer --url "https://example.com" --force-fetch

  list_history: |
    scraper-summarizer history

  show_run: |
    scraper-summarizer history show 5
`
